package http

import (
	"errors"

	"mediasearch-srv/internal/quota"
	"mediasearch-srv/internal/search"
	pkgErrors "mediasearch-srv/pkg/errors"
	"mediasearch-srv/pkg/providers"
)

var (
	errInvalidRequest = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errInvalidDate = pkgErrors.NewHTTPError(
		400, "Invalid date (expected YYYY-MM-DD or MM/DD/YYYY)",
	)
	errMissingQueryText = pkgErrors.NewHTTPError(
		400, "Query text is required",
	)
	errInvalidDateRange = pkgErrors.NewHTTPError(
		400, "Start date must not be after end date",
	)
	errStoryNotFound = pkgErrors.NewHTTPError(
		404, "Story not found",
	)
	errUnknownProvider = pkgErrors.NewHTTPError(
		400, "Unknown provider",
	)
	errExpandedStaffOnly = pkgErrors.NewHTTPError(
		403, "Expanded stories are restricted to staff",
	)
	errUnsupported = pkgErrors.NewHTTPError(
		501, "Provider does not support this operation",
	)
	errOverQuota = pkgErrors.NewHTTPError(
		429, "Quota exceeded for this provider",
	)
)

func (h *handler) mapError(err error) error {
	var provErr *providers.ProviderError
	switch {
	case errors.Is(err, search.ErrMissingQueryText):
		return errMissingQueryText
	case errors.Is(err, search.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, search.ErrStoryNotFound):
		return errStoryNotFound
	case errors.Is(err, search.ErrExpandedStaffOnly):
		return errExpandedStaffOnly
	case errors.Is(err, providers.ErrProviderNotFound):
		return errUnknownProvider
	case errors.Is(err, providers.ErrUnsupportedOperation):
		return errUnsupported
	case errors.Is(err, quota.ErrOverQuota):
		return errOverQuota
	case errors.As(err, &provErr):
		return pkgErrors.NewHTTPError(400, provErr.Message)
	default:
		return err
	}
}
