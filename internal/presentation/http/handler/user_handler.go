package handler

import (
	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/presentation/http/dto/response"
)

// UserHandler handles the operator account admin screens.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all operator accounts.
func (h *UserHandler) List(c *gin.Context) {
	sess := GetSession(c)
	users, err := h.userService.ListUsers(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Users retrieved successfully", users)
}

// Create adds an operator account.
func (h *UserHandler) Create(c *gin.Context) {
	var input entity.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	user, err := h.userService.CreateUser(c.Request.Context(), sess, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created successfully", user)
}

// Update replaces an operator account.
func (h *UserHandler) Update(c *gin.Context) {
	var input entity.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	user, err := h.userService.UpdateUser(c.Request.Context(), sess, ParseID(c, "id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User updated successfully", user)
}

// Delete removes an operator account.
func (h *UserHandler) Delete(c *gin.Context) {
	sess := GetSession(c)
	if err := h.userService.DeleteUser(c.Request.Context(), sess, ParseID(c, "id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User deleted successfully", nil)
}
