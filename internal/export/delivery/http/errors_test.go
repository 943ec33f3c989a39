package http

import (
	"errors"
	"fmt"
	"testing"

	pkgErrors "mediasearch-srv/pkg/errors"
	"mediasearch-srv/pkg/providers"
)

func TestMapError(t *testing.T) {
	h := &handler{}

	t.Run("unsupported count maps to 400", func(t *testing.T) {
		err := fmt.Errorf("count stories for reddit-pushshift: %w", providers.ErrUnsupportedOperation)

		mapped := h.mapError(err)
		var httpErr *pkgErrors.HTTPError
		if !errors.As(mapped, &httpErr) {
			t.Fatalf("mapped = %T (%v), want *pkgErrors.HTTPError", mapped, mapped)
		}
		if httpErr.StatusCode() != 400 {
			t.Errorf("status = %d, want 400", httpErr.StatusCode())
		}
	})

	t.Run("provider error carries its message", func(t *testing.T) {
		err := providers.NewProviderError("reddit-pushshift", "malformed query")

		mapped := h.mapError(err)
		var httpErr *pkgErrors.HTTPError
		if !errors.As(mapped, &httpErr) {
			t.Fatalf("mapped = %T, want *pkgErrors.HTTPError", mapped)
		}
		if httpErr.StatusCode() != 400 || httpErr.Message != "malformed query" {
			t.Errorf("mapped = %+v", httpErr)
		}
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		err := errors.New("backend down")
		if mapped := h.mapError(err); !errors.Is(mapped, err) {
			t.Errorf("mapped = %v, want original error", mapped)
		}
	})
}
