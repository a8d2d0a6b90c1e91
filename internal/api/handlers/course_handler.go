package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/course"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	service *application.CourseService
}

func NewCourseHandler(service *application.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// GET /courses
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.service.List()
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// POST /courses (admin)
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var input course.CreateCourseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := h.service.Create(input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
