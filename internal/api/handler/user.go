package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/autoflip/backend/internal/model/dto"
	"github.com/autoflip/backend/internal/pkg/response"
	"github.com/autoflip/backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Upsert creates or updates a user keyed on email.
// POST /users/upsert
func (h *UserHandler) Upsert(c *gin.Context) {
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email is required")
		return
	}

	if err := h.userService.Upsert(&req); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.OK(c, dto.UpsertUserResponse{OK: true})
}
