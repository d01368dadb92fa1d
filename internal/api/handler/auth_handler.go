package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/api/metrics"
	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and returns a bearer token plus the role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Presence is the only validation; anything missing or mismatched
	// collapses into the same 401 so usernames cannot be enumerated.
	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

// ForgotPassword issues a reset token and mails the reset link.
//
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.PasswordResetRequestsTotal.WithLabelValues("unknown_email").Inc()
		case errors.Is(err, domain.ErrMailDelivery):
			metrics.PasswordResetRequestsTotal.WithLabelValues("mail_error").Inc()
		}
		return err
	}

	metrics.PasswordResetRequestsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset link sent to your email"})
}

// ResetPassword exchanges a valid reset token for a new password.
//
// @Summary      Reset the password with an emailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset token and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrResetTokenExpired):
			metrics.PasswordResetsCompletedTotal.WithLabelValues("expired_token").Inc()
		case errors.Is(err, domain.ErrInvalidResetToken):
			metrics.PasswordResetsCompletedTotal.WithLabelValues("invalid_token").Inc()
		}
		return err
	}

	metrics.PasswordResetsCompletedTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset successfully. You can now login."})
}
