package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get returns the account of the authenticated caller. The password hash is
// excluded from the payload.
//
// @Summary      Get the current logged in user
// @Tags         users
// @Produce      json
// @Param        token  header  string  true  "Signed token"
// @Success      200  {object}  userEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse  "User not found"
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/user [get]
func (h *UserHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		Status: "success",
		Data: userData{
			User: userResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
		},
	})
}

type userResponse struct {
	ID    string `json:"user_id"`
	Name  string `json:"user_name"`
	Email string `json:"user_email"`
}

type userData struct {
	User userResponse `json:"user"`
}

type userEnvelope struct {
	Status string   `json:"status"`
	Data   userData `json:"data"`
}
