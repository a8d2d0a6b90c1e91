package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type ProofHandler struct {
	service *application.ProofService
}

func NewProofHandler(service *application.ProofService) *ProofHandler {
	return &ProofHandler{service: service}
}

type updateProofInput struct {
	Path string `json:"path" binding:"required"`
}

// PUT /prooves/:id
func (h *ProofHandler) UpdateProof(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	var input updateProofInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Update(cl.UserID, cl.Roles, id, input.Path)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /prooves/:id
func (h *ProofHandler) DeleteProof(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	if err := h.service.Delete(cl.UserID, cl.Roles, id); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
