package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service *application.ExportService
}

func NewExportHandler(service *application.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /excel (staff) streams the approved-ticket workbook for the given
// date range, optionally narrowed by course or group.
func (h *ExportHandler) ExportTickets(c *gin.Context) {
	var f ticket.ExportFilter

	if v := c.Query("startDate"); v != "" {
		t, err := ticket.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid startDate"})
			return
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := ticket.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid endDate"})
			return
		}
		f.EndDate = &t
	}
	if v := c.Query("courseId"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid courseId"})
			return
		}
		id := uint(id64)
		f.CourseID = &id
	}
	if v := c.Query("groupId"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid groupId"})
			return
		}
		id := uint(id64)
		f.GroupID = &id
	}

	data, filename, err := h.service.ExportApproved(f)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
