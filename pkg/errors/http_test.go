package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "ai-notes/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.ErrNotFound)

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to unwrap")
	}
	if he.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", he.StatusCode, http.StatusNotFound)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not unwrap to HTTPError")
	}
}

func TestHTTPError_Error(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "note already exists")
	if got := err.Error(); got != "409: note already exists" {
		t.Errorf("Error() = %q", got)
	}
}
