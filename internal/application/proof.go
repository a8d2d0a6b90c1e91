package application

import (
	"errors"
	"fmt"

	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/repository"
	"gorm.io/gorm"
)

var ErrProofNotFound = errors.New("proof not found")

// ProofService covers the two standalone proof operations (rename/repath and
// delete). Batch replacement lives on the ticket update path.
type ProofService struct {
	Repos *repository.Repos
}

func NewProofService(repos *repository.Repos) *ProofService {
	return &ProofService{Repos: repos}
}

func (s *ProofService) loadWithTicket(id uint) (*ticket.Proof, *ticket.Ticket, error) {
	p, err := s.Repos.Proof.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProofNotFound
		}
		return nil, nil, storeErr("proof get", err)
	}
	t, err := s.Repos.Ticket.FindByID(p.TicketID)
	if err != nil {
		return nil, nil, storeErr("proof get", err)
	}
	return p, t, nil
}

// Update repaths one proof; gated by the same edit rules as the owning
// ticket's content.
func (s *ProofService) Update(userID uint, roles []string, id uint, path string) (*ticket.Proof, error) {
	p, t, err := s.loadWithTicket(id)
	if err != nil {
		return nil, err
	}
	if err := CanEditTicketContent(userID, roles, t); err != nil {
		return nil, err
	}
	p.Name = fmt.Sprintf("Proof for ticket %d", t.ID)
	p.Path = path
	if err := s.Repos.Proof.Save(p); err != nil {
		return nil, storeErr("proof update", err)
	}
	return p, nil
}

func (s *ProofService) Delete(userID uint, roles []string, id uint) error {
	_, t, err := s.loadWithTicket(id)
	if err != nil {
		return err
	}
	if err := CanEditTicketContent(userID, roles, t); err != nil {
		return err
	}
	if err := s.Repos.Proof.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProofNotFound
		}
		return storeErr("proof delete", err)
	}
	return nil
}
