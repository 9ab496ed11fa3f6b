package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/api/metrics"
	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns an access/refresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    toUserResponse(user),
	})
}

// Refresh exchanges a refresh token for a new access token.
//
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  refreshResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	access, err := h.authService.Refresh(c.Request().Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			metrics.TokenRefreshTotal.WithLabelValues("invalid_token").Inc()
		} else {
			metrics.TokenRefreshTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, refreshResponse{Access: access})
}
