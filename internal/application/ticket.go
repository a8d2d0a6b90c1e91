package application

import (
	"errors"
	"fmt"

	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrTicketForbidden = errors.New("no permission for this ticket")
	ErrTicketLocked    = errors.New("ticket can no longer be edited")
	ErrBadTransition   = errors.New("status transition not allowed")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidReason   = errors.New("unknown ticket reason")
)

const defaultReviewPageSize = 100

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

// Create opens a new leave request for userID. The owner always comes from
// the authenticated subject, never from the payload. Tickets start PENDING
// with name and reason defaulted, and the proof batch lands atomically with
// the ticket row.
func (s *TicketService) Create(userID uint, input ticket.CreateTicketDTO) (*ticket.Ticket, error) {
	start, err := ticket.ParseDate(input.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := ticket.ParseDate(input.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	t := &ticket.Ticket{
		Name:        ticket.DefaultName,
		Description: input.Description,
		StartDate:   start,
		EndDate:     end,
		Reason:      ticket.ReasonSickday,
		Status:      ticket.StatusPending,
		UserID:      userID,
	}
	if input.Name != nil && *input.Name != "" {
		t.Name = *input.Name
	}
	if input.Reason != nil {
		if !ticket.IsKnownReason(*input.Reason) {
			return nil, ErrInvalidReason
		}
		t.Reason = *input.Reason
	}
	for i, path := range input.Proofs {
		t.Proofs = append(t.Proofs, ticket.Proof{
			Name: fmt.Sprintf("Proof for ticket - %d", i+1),
			Path: path,
		})
	}

	created, err := s.Repos.Ticket.Create(t)
	if err != nil {
		return nil, storeErr("ticket create", err)
	}
	return created, nil
}

// GetByID checks existence before authorization, so probing an id that does
// not exist never reveals whether it would have been readable.
func (s *TicketService) GetByID(userID uint, roles []string, id uint) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, storeErr("ticket get", err)
	}
	if !CanViewTicket(userID, roles, t) {
		return nil, ErrTicketForbidden
	}
	return t, nil
}

// List branches on role: staff get the filtered, paginated review queue,
// students get their own tickets only.
func (s *TicketService) List(userID uint, roles []string, f ticket.ReviewFilter) ([]ticket.Ticket, int64, error) {
	if CanListAllTickets(roles) {
		if f.Limit <= 0 {
			f.Limit = defaultReviewPageSize
		}
		tickets, total, err := s.Repos.Ticket.FindForReview(f)
		if err != nil {
			return nil, 0, storeErr("ticket review list", err)
		}
		return tickets, total, nil
	}

	tickets, err := s.Repos.Ticket.FindByOwner(userID)
	if err != nil {
		return nil, 0, storeErr("ticket own list", err)
	}
	return tickets, int64(len(tickets)), nil
}

// UpdateContent applies a partial patch while the ticket is still PENDING.
// Denial order: missing ticket, then state conflict, then permission.
func (s *TicketService) UpdateContent(userID uint, roles []string, id uint, input ticket.UpdateTicketDTO) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, storeErr("ticket update", err)
	}

	if err := CanEditTicketContent(userID, roles, t); err != nil {
		return nil, err
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Reason != nil {
		if !ticket.IsKnownReason(*input.Reason) {
			return nil, ErrInvalidReason
		}
		t.Reason = *input.Reason
	}
	if input.EndDate != nil {
		end, err := ticket.ParseDate(*input.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		t.EndDate = end
	}

	var proofs *[]ticket.Proof
	if input.Proofs != nil {
		batch := make([]ticket.Proof, 0, len(*input.Proofs))
		for i, path := range *input.Proofs {
			batch = append(batch, ticket.Proof{
				Name:     fmt.Sprintf("Proof for ticket %d - %d", id, i+1),
				Path:     path,
				TicketID: id,
			})
		}
		proofs = &batch
	}

	updated, err := s.Repos.Ticket.ReplaceContent(t, proofs)
	if err != nil {
		return nil, storeErr("ticket update", err)
	}
	return updated, nil
}

// ChangeStatus drives the state machine. The only edges are
// PENDING -> APPROVED and PENDING -> REJECTED; everything else, including
// setting the current value again, is a conflict. The repository-side guard
// makes the transition atomic per row, so a racing second approval loses.
func (s *TicketService) ChangeStatus(roles []string, id uint, next ticket.Status) (*ticket.Ticket, error) {
	if !CanChangeStatus(roles) {
		return nil, ErrTicketForbidden
	}

	t, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, storeErr("ticket status", err)
	}

	if t.Status != ticket.StatusPending || next == ticket.StatusPending {
		return nil, ErrBadTransition
	}

	rows, err := s.Repos.Ticket.SetStatus(id, ticket.StatusPending, next)
	if err != nil {
		return nil, storeErr("ticket status", err)
	}
	if rows == 0 {
		// someone else moved it first
		return nil, ErrBadTransition
	}

	updated, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		return nil, storeErr("ticket status", err)
	}
	return updated, nil
}

// Delete is owner-only and refuses approved tickets, but reports every miss
// as not-found: callers cannot tell absent, foreign and approved apart.
func (s *TicketService) Delete(userID uint, id uint) error {
	err := s.Repos.Ticket.DeleteOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return storeErr("ticket delete", err)
	}
	return nil
}
