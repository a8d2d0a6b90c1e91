//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/domain/user"
)

type tokenEnvelope struct {
	User   user.User `json:"user"`
	Tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"tokens"`
}

func registerUser(t *testing.T, login string) tokenEnvelope {
	t.Helper()
	w := doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"login":    login,
		"password": "secret123",
		"name":     "User " + login,
	})
	mustStatus(t, w, http.StatusCreated)
	var env tokenEnvelope
	decode(t, w, &env)
	return env
}

// promoteToAdmin flips roles in the store and logs in again so the fresh
// token carries the new role set.
func promoteToAdmin(t *testing.T, login string) string {
	t.Helper()
	err := gormDB.Model(&user.User{}).
		Where("login = ?", login).
		Update("roles", pq.StringArray{user.RoleStudent, user.RoleAdmin}).Error
	require.NoError(t, err)

	w := doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"login":    login,
		"password": "secret123",
	})
	mustStatus(t, w, http.StatusOK)
	var env tokenEnvelope
	decode(t, w, &env)
	return env.Tokens.AccessToken
}

func TestTicketLifecycle(t *testing.T) {
	student := registerUser(t, "lifecycle-student")
	registerUser(t, "lifecycle-admin")
	adminToken := promoteToAdmin(t, "lifecycle-admin")
	studentToken := student.Tokens.AccessToken

	// create with defaults and one proof
	w := doJSON(t, http.MethodPost, "/tickets", studentToken, map[string]interface{}{
		"description": "flu",
		"startDate":   "2026-03-02",
		"endDate":     "2026-03-05",
		"prooves":     []string{"proofs/cert.pdf"},
	})
	mustStatus(t, w, http.StatusCreated)
	var created ticket.Ticket
	decode(t, w, &created)
	assert.Equal(t, "Sick Day", created.Name)
	assert.Equal(t, ticket.StatusPending, created.Status)
	assert.Equal(t, ticket.ReasonSickday, created.Reason)
	require.Len(t, created.Proofs, 1)
	assert.Equal(t, "Proof for ticket - 1", created.Proofs[0].Name)

	path := fmt.Sprintf("/tickets/%d", created.ID)

	// owner can edit while pending
	w = doJSON(t, http.MethodPut, path, studentToken, map[string]interface{}{
		"description": "flu, doctor confirmed",
	})
	mustStatus(t, w, http.StatusOK)

	// a non-admin cannot decide
	w = doJSON(t, http.MethodPatch, path+"/status", studentToken, map[string]string{"status": "APPROVED"})
	mustStatus(t, w, http.StatusForbidden)

	// admin approves
	w = doJSON(t, http.MethodPatch, path+"/status", adminToken, map[string]string{"status": "APPROVED"})
	mustStatus(t, w, http.StatusOK)
	var approved ticket.Ticket
	decode(t, w, &approved)
	assert.Equal(t, ticket.StatusApproved, approved.Status)

	// a second decision conflicts
	w = doJSON(t, http.MethodPatch, path+"/status", adminToken, map[string]string{"status": "REJECTED"})
	mustStatus(t, w, http.StatusConflict)

	// content is locked after the decision
	w = doJSON(t, http.MethodPut, path, studentToken, map[string]interface{}{"description": "late edit"})
	mustStatus(t, w, http.StatusConflict)

	// approved tickets cannot be deleted by the owner
	w = doJSON(t, http.MethodDelete, path, studentToken, nil)
	mustStatus(t, w, http.StatusNotFound)

	// the spreadsheet now has something to say
	w = doJSON(t, http.MethodGet, "/excel", adminToken, nil)
	mustStatus(t, w, http.StatusOK)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestStudentIsolation(t *testing.T) {
	alice := registerUser(t, "isolation-alice")
	bob := registerUser(t, "isolation-bob")

	w := doJSON(t, http.MethodPost, "/tickets", alice.Tokens.AccessToken, map[string]interface{}{
		"description": "family matter",
		"startDate":   "2026-04-01",
		"endDate":     "2026-04-02",
		"reason":      "FAMILY",
	})
	mustStatus(t, w, http.StatusCreated)
	var created ticket.Ticket
	decode(t, w, &created)

	path := fmt.Sprintf("/tickets/%d", created.ID)

	// bob cannot read alice's ticket
	w = doJSON(t, http.MethodGet, path, bob.Tokens.AccessToken, nil)
	mustStatus(t, w, http.StatusForbidden)

	// bob deleting it looks like it never existed
	w = doJSON(t, http.MethodDelete, path, bob.Tokens.AccessToken, nil)
	mustStatus(t, w, http.StatusNotFound)

	// and alice still has it
	w = doJSON(t, http.MethodGet, path, alice.Tokens.AccessToken, nil)
	mustStatus(t, w, http.StatusOK)
}

func TestUserDeleteCascade(t *testing.T) {
	victim := registerUser(t, "cascade-victim")
	registerUser(t, "cascade-admin")
	adminToken := promoteToAdmin(t, "cascade-admin")

	w := doJSON(t, http.MethodPost, "/tickets", victim.Tokens.AccessToken, map[string]interface{}{
		"description": "competition",
		"startDate":   "2026-05-01",
		"endDate":     "2026-05-03",
		"reason":      "COMPETITION",
		"prooves":     []string{"proofs/invite.pdf"},
	})
	mustStatus(t, w, http.StatusCreated)
	var created ticket.Ticket
	decode(t, w, &created)

	w = doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d", victim.User.ID), adminToken, nil)
	mustStatus(t, w, http.StatusOK)

	var ticketCount, proofCount int64
	require.NoError(t, gormDB.Model(&ticket.Ticket{}).Where("user_id = ?", victim.User.ID).Count(&ticketCount).Error)
	require.NoError(t, gormDB.Model(&ticket.Proof{}).Where("ticket_id = ?", created.ID).Count(&proofCount).Error)
	assert.Zero(t, ticketCount)
	assert.Zero(t, proofCount)
}
