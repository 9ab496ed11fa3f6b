package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/api/middleware"
)

// ctxPrincipal extracts the identity injected by the Auth middleware. The
// identity lives on the request context only; handlers share no auth state.
func ctxPrincipal(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, role, nil
}
