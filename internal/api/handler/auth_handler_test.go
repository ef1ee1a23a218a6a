package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/apnakhakra/storefront-api/internal/core/domain"
	"github.com/apnakhakra/storefront-api/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error
	resetErr       error

	resetEmail, resetPhone, resetPassword string
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) ResetPassword(_ context.Context, email, phone, newPassword string) error {
	s.resetEmail, s.resetPhone, s.resetPassword = email, phone, newPassword
	return s.resetErr
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// doJSON invokes a handler directly and returns the recorder plus whatever
// error the handler propagated for the central error handler.
func doJSON(e *echo.Echo, handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func requireHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("status = %d, want %d (message %v)", he.Code, want, he.Message)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerResult: &ports.AuthResult{
		Token: "tok",
		Email: "alice@x.com",
		Role:  domain.RoleUser,
		Name:  "Alice",
	}}
	h := NewAuthHandler(svc)
	e := newTestEcho()

	rec, err := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@x.com","password":"secret1"}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "tok" || resp.Role != domain.RoleUser {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()

	_, err := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"email":"alice@x.com"}`)
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()

	_, err := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"secret1"}`)
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAuthHandler_Register_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailInUse})
	e := newTestEcho()

	// Domain errors pass through untouched for the central error handler.
	_, err := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@x.com","password":"secret1"}`)
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthHandler_Login_UserIncludesProfile(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.AuthResult{
		Token: "tok",
		Email: "carol@x.com",
		Role:  domain.RoleUser,
		Name:  "Carol",
	}}
	h := NewAuthHandler(svc)
	e := newTestEcho()

	rec, err := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"carol@x.com","password":"s3cret"}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	// User responses expose the profile keys even when the values are empty.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"name", "phone", "address"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing %q in user login response", key)
		}
	}
}

func TestAuthHandler_Login_AdminOmitsProfile(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.AuthResult{
		Token: "tok",
		Email: "admin@x.com",
		Role:  domain.RoleAdmin,
	}}
	h := NewAuthHandler(svc)
	e := newTestEcho()

	rec, err := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"admin@x.com","password":"admin123"}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"name", "phone", "address"} {
		if _, ok := raw[key]; ok {
			t.Errorf("admin login response must not carry %q", key)
		}
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	e := newTestEcho()

	_, err := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"ghost@x.com","password":"bad"}`)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	e := newTestEcho()

	rec, err := doJSON(e, h.ForgotPassword, http.MethodPost, "/auth/forgot-password",
		`{"email":"fay@x.com","phone":"+15551234567","newPassword":"newpass6"}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.resetPhone != "+15551234567" {
		t.Errorf("phone passed to service = %q", svc.resetPhone)
	}

	var resp forgotPasswordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
}

func TestAuthHandler_ForgotPassword_EmptyPhoneAllowed(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	e := newTestEcho()

	// The phone key must be present but may be empty.
	rec, err := doJSON(e, h.ForgotPassword, http.MethodPost, "/auth/forgot-password",
		`{"email":"hal@x.com","phone":"","newPassword":"newpass6"}`)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.resetPhone != "" {
		t.Errorf("phone passed to service = %q, want empty", svc.resetPhone)
	}
}

func TestAuthHandler_ForgotPassword_MissingPhoneKey(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()

	_, err := doJSON(e, h.ForgotPassword, http.MethodPost, "/auth/forgot-password",
		`{"email":"hal@x.com","newPassword":"newpass6"}`)
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAuthHandler_ForgotPassword_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()

	_, err := doJSON(e, h.ForgotPassword, http.MethodPost, "/auth/forgot-password",
		`{"email":"hal@x.com","phone":"","newPassword":"tiny5"}`)
	requireHTTPStatus(t, err, http.StatusBadRequest)
}
