package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edukita/learning-api/internal/core/ports"
)

// Context keys set by Auth. IdentityKey holds the *ports.Identity, TokenKey
// the raw bearer string (needed by the logout handler for revocation).
const (
	IdentityKey = "auth.identity"
	TokenKey    = "auth.token"
)

// Auth extracts the bearer token, verifies its signature and expiry, and
// checks the revocation ledger. The two checks are one unit: a route mounting
// Auth cannot skip the ledger lookup. On success the typed identity and the
// raw token are injected into the request context.
func Auth(issuer ports.TokenIssuer, ledger ports.RevocationLedger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			identity, err := issuer.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			revoked, err := ledger.IsRevoked(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "revocation check unavailable")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			c.Set(IdentityKey, identity)
			c.Set(TokenKey, token)

			return next(c)
		}
	}
}
