package http

import (
	"errors"

	"mediasearch-srv/internal/savedsearch"
	pkgErrors "mediasearch-srv/pkg/errors"
)

var (
	errInvalidRequest = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errMissingName = pkgErrors.NewHTTPError(
		400, "Saved search name is required",
	)
	errInvalidSerialized = pkgErrors.NewHTTPError(
		400, "Serialized query state is not valid",
	)
	errNotFound = pkgErrors.NewHTTPError(
		404, "Saved search not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, savedsearch.ErrMissingName):
		return errMissingName
	case errors.Is(err, savedsearch.ErrInvalidSerialized):
		return errInvalidSerialized
	case errors.Is(err, savedsearch.ErrNotFound):
		return errNotFound
	default:
		return err
	}
}
