package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *application.UserService
}

func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GET /users (staff; optional ?name= substring filter)
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.List(c.Query("name"))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	cl, ok := claims(c)
	if !ok {
		return
	}
	u, err := h.service.FindByID(cl.UserID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.service.FindByID(id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /users/:id (admin). Cascades tickets and proofs.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "user deleted"})
}

// PATCH /users/:id/roles/grant (admin)
func (h *UserHandler) GrantRole(c *gin.Context) {
	h.roleChange(c, h.service.GrantRole)
}

// PATCH /users/:id/roles/revoke (admin)
func (h *UserHandler) RevokeRole(c *gin.Context) {
	h.roleChange(c, h.service.RevokeRole)
}

func (h *UserHandler) roleChange(c *gin.Context, apply func(uint, user.Role) (*user.User, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input user.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	u, err := apply(id, input.Role)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PATCH /users/:id/group (admin)
func (h *UserHandler) AssignGroup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input user.AssignGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	u, err := h.service.AssignGroup(id, input.GroupID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
