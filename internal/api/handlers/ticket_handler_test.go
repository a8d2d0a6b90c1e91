package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsm/sickday-go/internal/api/middleware"
	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/repository"
	"github.com/daniilsm/sickday-go/internal/repository/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeAuth injects claims the way JWTAuthMiddleware would, skipping the
// signature check.
func fakeAuth(userID uint, roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &middleware.Claims{UserID: userID, Roles: roles})
		c.Next()
	}
}

func setupTicketRouter(t *testing.T, userID uint, roles []string) (*gin.Engine, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	svc := application.NewTicketService(&repository.Repos{Ticket: mockTicket})
	h := NewTicketHandler(svc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := fakeAuth(userID, roles)
	r.POST("/tickets", auth, h.CreateTicket)
	r.GET("/tickets", auth, h.ListTickets)
	r.GET("/tickets/:id", auth, h.GetTicket)
	r.PUT("/tickets/:id", auth, h.UpdateTicket)
	r.PATCH("/tickets/:id/status", auth, h.ChangeStatus)
	r.DELETE("/tickets/:id", auth, h.DeleteTicket)
	return r, mockTicket
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTicketHandler_Created(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 7, []string{user.RoleStudent})

	mockTicket.EXPECT().Create(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) (*ticket.Ticket, error) {
		tk.ID = 1
		return tk, nil
	})

	w := do(r, http.MethodPost, "/tickets", `{"description":"flu","startDate":"2026-03-02","endDate":"2026-03-05"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Sick Day"`)
}

func TestCreateTicketHandler_MissingFields(t *testing.T) {
	r, _ := setupTicketRouter(t, 7, []string{user.RoleStudent})

	w := do(r, http.MethodPost, "/tickets", `{"description":"flu"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicketHandler_NotFound(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 7, []string{user.RoleStudent})

	mockTicket.EXPECT().FindByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	w := do(r, http.MethodGet, "/tickets/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTicketHandler_Forbidden(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 99, []string{user.RoleStudent})

	mockTicket.EXPECT().FindByID(uint(1)).Return(&ticket.Ticket{ID: 1, UserID: 7}, nil)

	w := do(r, http.MethodGet, "/tickets/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTicketHandler_BadID(t *testing.T) {
	r, _ := setupTicketRouter(t, 7, []string{user.RoleStudent})

	w := do(r, http.MethodGet, "/tickets/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTicketsHandler_FilterParsing(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	mockTicket.EXPECT().FindForReview(gomock.Any()).DoAndReturn(func(f ticket.ReviewFilter) ([]ticket.Ticket, int64, error) {
		assert.Equal(t, "ali", f.UserName)
		assert.Equal(t, uint(3), *f.GroupID)
		assert.Equal(t, ticket.ReasonSickday, *f.Reason)
		assert.Equal(t, ticket.StatusPending, *f.Status)
		assert.Equal(t, 20, f.Offset)
		assert.Equal(t, 10, f.Limit)
		return []ticket.Ticket{}, 0, nil
	})

	w := do(r, http.MethodGet, "/tickets?userName=ali&group=3&reason=SICKDAY&status=PENDING&offset=20&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestListTicketsHandler_UnknownStatusFilter(t *testing.T) {
	r, _ := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	// rejected before the repository sees it, not a postgres enum error
	w := do(r, http.MethodGet, "/tickets?status=BOGUS", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
}

func TestListTicketsHandler_UnknownReasonFilter(t *testing.T) {
	r, _ := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	w := do(r, http.MethodGet, "/tickets?reason=BOGUS", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid reason")
}

func TestUpdateTicketHandler_Locked(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 7, []string{user.RoleStudent})

	mockTicket.EXPECT().FindByID(uint(1)).Return(&ticket.Ticket{ID: 1, UserID: 7, Status: ticket.StatusApproved}, nil)

	w := do(r, http.MethodPut, "/tickets/1", `{"description":"late edit"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChangeStatusHandler_Approve(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	pending := &ticket.Ticket{ID: 1, Status: ticket.StatusPending}
	mockTicket.EXPECT().FindByID(uint(1)).Return(pending, nil)
	mockTicket.EXPECT().SetStatus(uint(1), ticket.StatusPending, ticket.StatusApproved).Return(int64(1), nil)
	mockTicket.EXPECT().FindByID(uint(1)).Return(&ticket.Ticket{ID: 1, Status: ticket.StatusApproved}, nil)

	w := do(r, http.MethodPatch, "/tickets/1/status", `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
}

func TestChangeStatusHandler_UnknownStatus(t *testing.T) {
	r, _ := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	w := do(r, http.MethodPatch, "/tickets/1/status", `{"status":"MAYBE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeStatusHandler_Conflict(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 1, []string{user.RoleAdmin})

	mockTicket.EXPECT().FindByID(uint(1)).Return(&ticket.Ticket{ID: 1, Status: ticket.StatusRejected}, nil)

	w := do(r, http.MethodPatch, "/tickets/1/status", `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteTicketHandler_NoContent(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 7, []string{user.RoleStudent})

	mockTicket.EXPECT().DeleteOwned(uint(1), uint(7)).Return(nil)

	w := do(r, http.MethodDelete, "/tickets/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTicketHandler_CollapsedNotFound(t *testing.T) {
	r, mockTicket := setupTicketRouter(t, 99, []string{user.RoleStudent})

	mockTicket.EXPECT().DeleteOwned(uint(1), uint(99)).Return(gorm.ErrRecordNotFound)

	w := do(r, http.MethodDelete, "/tickets/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
