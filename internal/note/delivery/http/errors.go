package http

import (
	"errors"
	"net/http"

	"ai-notes/internal/note"
	pkgErrors "ai-notes/pkg/errors"
)

var (
	errIDRequired       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidReference = pkgErrors.NewHTTPError(http.StatusBadRequest, "reference must be an RFC3339 timestamp")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and rendered as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Note not found")
	case errors.Is(err, note.ErrTitleRequired),
		errors.Is(err, note.ErrContentRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title and content are required")
	case errors.Is(err, note.ErrTextRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text cannot be empty")
	case errors.Is(err, note.ErrTargetLanguageRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "target_language is required")
	case errors.Is(err, note.ErrNothingToTranslate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "nothing to translate")
	case errors.Is(err, note.ErrLLMUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "LLM provider is not configured")
	case errors.Is(err, note.ErrLLMFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "LLM request failed")
	case errors.Is(err, note.ErrLLMResponseInvalid):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to parse LLM response")
	default:
		return err
	}
}
