package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != "dynamodb timeout" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if simple.ToHTTPError().Details != "" || simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}

	detailed := simple.WithDetails("quote_id is required")
	if detailed.ToHTTPError().Details != "quote_id is required" || simple.Err != nil {
		t.Fatalf("WithDetails must not mutate the original")
	}
}
