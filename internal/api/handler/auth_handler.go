package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindxDoc/tester-backend/internal/api/metrics"
	"github.com/mindxDoc/tester-backend/internal/core/domain"
	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns a signed token for it.
//
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse  "User already exist!"
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "User already exist!"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{JWTToken: token})
}

// Login authenticates an account and returns a signed token.
//
// @Summary      Login into an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse  "Invalid Credential / Wrong password"
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and bad password keep their historical messages.
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid Credential"})
		case errors.Is(err, domain.ErrWrongPassword):
			metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Wrong password"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{JWTToken: token})
}

// Logout acknowledges the logout. Tokens are stateless, so there is nothing
// to invalidate server-side; the client discards its copy.
//
// @Summary      Log out a user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Verify confirms the caller's token. Reaching this handler at all means the
// Auth middleware accepted it.
//
// @Summary      Verify the caller's token
// @Tags         auth
// @Produce      json
// @Param        token  header  string  true  "Signed token"
// @Success      200  {boolean}  boolean
// @Failure      401  {object}   errorResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
