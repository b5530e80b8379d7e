package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindxDoc/tester-backend/internal/api/middleware"
	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// present, non-empty subject proves the middleware ran; anything else is a
// routing mistake and fails closed with 401.
func ctxIdentity(c echo.Context) (domain.AuthorizedIdentity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.AuthorizedIdentity)
	if !ok || identity.UserID == "" {
		return domain.AuthorizedIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return identity, nil
}
