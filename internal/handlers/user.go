// internal/handlers/user.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierluna/jewelry-backend/internal/services"
	"github.com/atelierluna/jewelry-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid account data")
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, "Invalid account data", validationErrors)
			return
		}
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			utils.ConflictResponse(c, "Username is already taken")
		case errors.Is(err, services.ErrEmailTaken):
			utils.ConflictResponse(c, "Email is already registered")
		default:
			utils.InternalErrorResponse(c, "Failed to create account")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id")
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
