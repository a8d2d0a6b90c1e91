package application

import (
	"testing"

	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/repository"
	"github.com/daniilsm/sickday-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupProofServiceMocks(t *testing.T) (*ProofService, *mock.MockProofRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProof := mock.NewMockProofRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Proof:  mockProof,
		Ticket: mockTicket,
	}
	svc := NewProofService(repos)
	return svc, mockProof, mockTicket
}

// --------------------- Update ---------------------
func TestUpdateProof_Success(t *testing.T) {
	svc, mockProof, mockTicket := setupProofServiceMocks(t)

	mockProof.EXPECT().FindByID(uint(10)).Return(&ticket.Proof{ID: 10, TicketID: 5, Path: "proofs/old.pdf"}, nil)
	mockTicket.EXPECT().FindByID(uint(5)).Return(&ticket.Ticket{ID: 5, UserID: 7, Status: ticket.StatusPending}, nil)
	mockProof.EXPECT().Save(gomock.Any()).DoAndReturn(func(p *ticket.Proof) error {
		assert.Equal(t, "proofs/new.pdf", p.Path)
		assert.Equal(t, "Proof for ticket 5", p.Name)
		return nil
	})

	p, err := svc.Update(7, studentRoles, 10, "proofs/new.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "proofs/new.pdf", p.Path)
}

func TestUpdateProof_LockedTicket(t *testing.T) {
	svc, mockProof, mockTicket := setupProofServiceMocks(t)

	mockProof.EXPECT().FindByID(uint(10)).Return(&ticket.Proof{ID: 10, TicketID: 5}, nil)
	mockTicket.EXPECT().FindByID(uint(5)).Return(&ticket.Ticket{ID: 5, UserID: 7, Status: ticket.StatusApproved}, nil)

	_, err := svc.Update(7, studentRoles, 10, "proofs/new.pdf")
	assert.ErrorIs(t, err, ErrTicketLocked)
}

func TestUpdateProof_NotFound(t *testing.T) {
	svc, mockProof, _ := setupProofServiceMocks(t)

	mockProof.EXPECT().FindByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(7, studentRoles, 404, "proofs/new.pdf")
	assert.ErrorIs(t, err, ErrProofNotFound)
}

// --------------------- Delete ---------------------
func TestDeleteProof_Success(t *testing.T) {
	svc, mockProof, mockTicket := setupProofServiceMocks(t)

	mockProof.EXPECT().FindByID(uint(10)).Return(&ticket.Proof{ID: 10, TicketID: 5}, nil)
	mockTicket.EXPECT().FindByID(uint(5)).Return(&ticket.Ticket{ID: 5, UserID: 7, Status: ticket.StatusPending}, nil)
	mockProof.EXPECT().Delete(uint(10)).Return(nil)

	assert.NoError(t, svc.Delete(7, studentRoles, 10))
}

func TestDeleteProof_StrangerForbidden(t *testing.T) {
	svc, mockProof, mockTicket := setupProofServiceMocks(t)

	mockProof.EXPECT().FindByID(uint(10)).Return(&ticket.Proof{ID: 10, TicketID: 5}, nil)
	mockTicket.EXPECT().FindByID(uint(5)).Return(&ticket.Ticket{ID: 5, UserID: 7, Status: ticket.StatusPending}, nil)

	assert.ErrorIs(t, svc.Delete(99, studentRoles, 10), ErrTicketForbidden)
}
