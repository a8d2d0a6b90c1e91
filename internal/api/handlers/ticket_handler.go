package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/daniilsm/sickday-go/internal/api/middleware"
	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service *application.TicketService
}

func NewTicketHandler(service *application.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func idParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id64), true
}

func claims(c *gin.Context) (*middleware.Claims, bool) {
	cl, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
	}
	return cl, ok
}

// POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cl, ok := claims(c)
	if !ok {
		return
	}

	t, err := h.service.Create(cl.UserID, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(cl.UserID, cl.Roles, id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /tickets. Staff see the filtered review queue, students their own.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	cl, ok := claims(c)
	if !ok {
		return
	}

	f, err := reviewFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, total, err := h.service.List(cl.UserID, cl.Roles, f)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: tickets, Total: total})
}

func reviewFilterFromQuery(c *gin.Context) (ticket.ReviewFilter, error) {
	var f ticket.ReviewFilter

	f.UserName = c.Query("userName")
	if v := c.Query("group"); v != "" {
		g64, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, err
		}
		g := uint(g64)
		f.GroupID = &g
	}
	if v := c.Query("reason"); v != "" {
		r := ticket.Reason(v)
		if !ticket.IsKnownReason(r) {
			return f, errors.New("Invalid reason. Must be SICKDAY, FAMILY or COMPETITION")
		}
		f.Reason = &r
	}
	if v := c.Query("status"); v != "" {
		s := ticket.Status(v)
		if !ticket.IsKnownStatus(s) {
			return f, errors.New("Invalid status. Must be PENDING, APPROVED or REJECTED")
		}
		f.Status = &s
	}
	if v := c.Query("startDate"); v != "" {
		t, err := ticket.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := ticket.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.EndDate = &t
	}
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	return f, nil
}

// PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.UpdateContent(cl.UserID, cl.Roles, id, input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PATCH /tickets/:id/status (admin)
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	var input ticket.ChangeStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ticket.IsKnownStatus(input.Status) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid status. Must be PENDING, APPROVED or REJECTED"})
		return
	}

	t, err := h.service.ChangeStatus(cl.Roles, id, input.Status)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cl, ok := claims(c)
	if !ok {
		return
	}

	if err := h.service.Delete(cl.UserID, id); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
