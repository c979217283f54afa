package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/marketplace-api/internal/dto"
	"github.com/yukikurage/marketplace-api/internal/services"
	"github.com/yukikurage/marketplace-api/internal/validation"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService    *services.UserService
	log            *zap.Logger
	validateCreate bool
}

func NewUserHandler(userService *services.UserService, log *zap.Logger, validateCreate bool) *UserHandler {
	return &UserHandler{
		userService:    userService,
		log:            log,
		validateCreate: validateCreate,
	}
}

// ListUsers returns every user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToUserDTOs(users))
}

// CreateUser creates a user from the request body
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input services.CreateUserInput
	if !bindCreate(c, validation.UserCreateFields, h.validateCreate, &input) {
		return
	}

	user, err := h.userService.CreateUser(input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusCreated, dto.NewMutationResponse(dto.StatusCreated, "User created", dto.ToUserDTO(*user)))
}

// GetUser returns a specific user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateUserInput
	if !bindUpdate(c, &input) {
		return
	}

	user, err := h.userService.UpdateUser(id, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusUpdated, "User updated", dto.ToUserDTO(*user)))
}

// DeleteUser deletes a user. Orders referencing it lose the reference and
// its offers are removed with it.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusDeleted, "User deleted", dto.ToUserDTO(*user)))
}
