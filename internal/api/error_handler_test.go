package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, resp.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrEmailInUse, http.StatusBadRequest, "Email is already in use"},
		{domain.ErrSlugExists, http.StatusBadRequest, "Product with this slug already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{domain.ErrAccountMismatch, http.StatusNotFound, "Email and phone do not match any account"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	}
	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: code = %d, want %d", tc.err, code, tc.code)
		}
		if msg != tc.message {
			t.Errorf("%v: message = %q, want %q", tc.err, msg, tc.message)
		}
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	code, msg := renderError(t, domain.NewValidationError("Name, email and password are required"))
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if msg != "Name, email and password are required" {
		t.Fatalf("message = %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", code)
	}
	if msg != "No token provided" {
		t.Fatalf("message = %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	// The real cause is logged, never sent to the client.
	if msg != "internal server error" {
		t.Fatalf("message = %q", msg)
	}
}
