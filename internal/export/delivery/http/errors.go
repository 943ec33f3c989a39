package http

import (
	"errors"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/quota"
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
	errNoQueries = pkgErrors.NewHTTPError(
		400, "At least one query is required",
	)
	errMissingEmail = pkgErrors.NewHTTPError(
		400, "Recipient email is required",
	)
	errTooFewStories = pkgErrors.NewHTTPError(
		400, "Too few stories for an email export; download directly instead",
	)
	errTooManyStories = pkgErrors.NewHTTPError(
		400, "Too many stories for an email export; narrow the queries",
	)
	errUnknownProvider = pkgErrors.NewHTTPError(
		400, "Unknown provider",
	)
	errUnsupportedCount = pkgErrors.NewHTTPError(
		400, "Provider cannot count results for this query",
	)
	errOverQuota = pkgErrors.NewHTTPError(
		429, "Quota exceeded for this provider",
	)
)

func (h *handler) mapError(err error) error {
	var provErr *providers.ProviderError
	switch {
	case errors.Is(err, export.ErrNoQueries):
		return errNoQueries
	case errors.Is(err, export.ErrMissingEmail):
		return errMissingEmail
	case errors.Is(err, export.ErrTooFewStories):
		return errTooFewStories
	case errors.Is(err, export.ErrTooManyStories):
		return errTooManyStories
	case errors.Is(err, providers.ErrProviderNotFound):
		return errUnknownProvider
	case errors.Is(err, providers.ErrUnsupportedOperation):
		return errUnsupportedCount
	case errors.Is(err, quota.ErrOverQuota):
		return errOverQuota
	case errors.As(err, &provErr):
		return pkgErrors.NewHTTPError(400, provErr.Message)
	default:
		return err
	}
}
