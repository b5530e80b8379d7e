package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindxDoc/tester-backend/internal/api/metrics"
	"github.com/mindxDoc/tester-backend/internal/core/auth"
	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// TokenHeader is the request header carrying the raw signed token. Existing
// clients send the token in a header literally named "token" rather than the
// bearer Authorization convention, so the name must not change.
const TokenHeader = "token"

// IdentityKey is the echo context key under which the validated
// domain.AuthorizedIdentity is stored for downstream handlers.
const IdentityKey = "identity"

// Auth validates the token header and injects the decoded identity into the
// request context. Requests with a missing, expired, or tampered token are
// rejected with 401 before any handler runs.
func Auth(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token header")
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				result := "invalid"
				if errors.Is(err, auth.ErrTokenExpired) {
					result = "expired"
				}
				metrics.TokenValidationsTotal.WithLabelValues(result).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(IdentityKey, domain.AuthorizedIdentity{UserID: claims.UserID})

			return next(c)
		}
	}
}
