package http

import (
	"errors"
	"net/http"

	"smart-reply-srv/internal/assistant"
	pkgErrors "smart-reply-srv/pkg/errors"
)

var (
	errPromptRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Prompt is required")
	errSomethingWrong = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrPromptRequired):
		return errPromptRequired
	default:
		return errSomethingWrong
	}
}
