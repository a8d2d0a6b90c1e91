package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	service *application.GroupService
}

func NewGroupHandler(service *application.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// GET /groups
func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.service.List()
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// POST /groups (admin)
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var input group.CreateGroupDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	g, err := h.service.Create(input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}
