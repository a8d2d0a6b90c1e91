package handlers

import (
	"errors"
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Ticket *TicketHandler
	Proof  *ProofHandler
	Group  *GroupHandler
	Course *CourseHandler
	Export *ExportHandler
	Upload *UploadHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(svc.Auth),
		User:   NewUserHandler(svc.User),
		Ticket: NewTicketHandler(svc.Ticket),
		Proof:  NewProofHandler(svc.Proof),
		Group:  NewGroupHandler(svc.Group),
		Course: NewCourseHandler(svc.Course),
		Export: NewExportHandler(svc.Export),
		Upload: NewUploadHandler(),
	}
}

// statusFor translates service failures into transport codes; anything not in
// the taxonomy is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrTicketForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrTicketNotFound),
		errors.Is(err, application.ErrProofNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrGroupNotFound),
		errors.Is(err, application.ErrCourseNotFound),
		errors.Is(err, application.ErrNoTicketsMatched):
		return http.StatusNotFound
	case errors.Is(err, application.ErrTicketLocked),
		errors.Is(err, application.ErrBadTransition),
		errors.Is(err, application.ErrLoginTaken):
		return http.StatusConflict
	case errors.Is(err, application.ErrInvalidDate),
		errors.Is(err, application.ErrInvalidReason),
		errors.Is(err, application.ErrUnknownRole):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), response.ErrorResponse{Error: err.Error()})
}
