package http

import (
	"errors"
	"net/http"

	"smart-reply-srv/internal/smartreply"
	pkgErrors "smart-reply-srv/pkg/errors"
)

var (
	errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message text is required")
	errGenerateFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate smart replies")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, smartreply.ErrMessageRequired):
		return errMessageRequired
	default:
		return errGenerateFailed
	}
}
