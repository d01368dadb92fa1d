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

	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn        func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	requestResetFn func(ctx context.Context, email string) error
	resetFn        func(ctx context.Context, token, newPassword string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.requestResetFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resetFn(ctx, token, newPassword)
}

func (s *stubAuthService) EnsureAdmin(context.Context) error { return nil }

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s/%s", username, password)
			}
			return &ports.LoginResult{Token: "signed-token", Role: domain.RoleAdmin}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["token"] != "signed-token" || body["role"] != "ADMIN" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"username":`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400 for malformed JSON, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	var requested string
	h := NewAuthHandler(&stubAuthService{
		requestResetFn: func(_ context.Context, email string) error {
			requested = email
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/forgot-password", `{"email":"alice@example.com"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot password returned error: %v", err)
	}
	if requested != "alice@example.com" {
		t.Fatalf("service called with wrong email: %s", requested)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Password reset link sent to your email" {
		t.Fatalf("unexpected message: %v", body)
	}
}

func TestAuthHandler_ForgotPassword_MissingEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		requestResetFn: func(context.Context, string) error {
			t.Fatalf("service must not be called on a validation failure")
			return nil
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/forgot-password", `{}`)
	err := h.ForgotPassword(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400 for a missing email, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		requestResetFn: func(context.Context, string) error {
			return domain.ErrUserNotFound
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)
	if err := h.ForgotPassword(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword_MailFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		requestResetFn: func(context.Context, string) error {
			return domain.ErrMailDelivery
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/forgot-password", `{"email":"alice@example.com"}`)
	if err := h.ForgotPassword(c); !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery to propagate, got %v", err)
	}
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		resetFn: func(_ context.Context, token, newPassword string) error {
			if token != "tok-1" || newPassword != "newpass" {
				t.Fatalf("unexpected arguments: %s/%s", token, newPassword)
			}
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/reset-password", `{"token":"tok-1","newPassword":"newpass"}`)
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Password reset successfully. You can now login." {
		t.Fatalf("unexpected message: %v", body)
	}
}

func TestAuthHandler_ResetPassword_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		resetFn: func(context.Context, string, string) error {
			t.Fatalf("service must not be called on a validation failure")
			return nil
		},
	})

	for _, body := range []string{`{}`, `{"token":"tok-1"}`, `{"newPassword":"x"}`} {
		c, _ := newJSONContext(t, http.MethodPost, "/api/auth/reset-password", body)
		err := h.ResetPassword(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected a 400 for body %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_ResetPassword_TokenErrorsPropagate(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidResetToken, domain.ErrResetTokenExpired} {
		h := NewAuthHandler(&stubAuthService{
			resetFn: func(context.Context, string, string) error { return want },
		})

		c, _ := newJSONContext(t, http.MethodPost, "/api/auth/reset-password", `{"token":"tok-1","newPassword":"x"}`)
		if err := h.ResetPassword(c); !errors.Is(err, want) {
			t.Fatalf("expected %v to propagate, got %v", want, err)
		}
	}
}
