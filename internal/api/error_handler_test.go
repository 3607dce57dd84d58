package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.New(io.Discard))
	handler(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"store email taken", domain.ErrStoreEmailTaken, http.StatusConflict},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"store not found", domain.ErrStoreNotFound, http.StatusNotFound},
		{"invalid owner", domain.ErrInvalidOwner, http.StatusBadRequest},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := render(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["message"] == "" {
				t.Fatalf("expected message in envelope, got %+v", body)
			}
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	rec, body := render(t, domain.NewValidationError(
		"name must be between 20 and 60 characters",
		"password must contain at least one uppercase letter",
	))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	violations, ok := body["errors"].([]any)
	if !ok || len(violations) != 2 {
		t.Fatalf("expected two violations, got %+v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["message"] != "missing authorization header" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec, body := render(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
}
