package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukita/learning-api/internal/api/middleware"
	"github.com/edukita/learning-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; handlers never build an identity
// themselves.
func ctxIdentity(c echo.Context) (*ports.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(*ports.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// ctxToken returns the raw bearer token stored by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.TokenKey).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return token, nil
}
