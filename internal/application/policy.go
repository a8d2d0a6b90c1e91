package application

import (
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/domain/user"
)

// Pure access predicates. No storage here: they answer "may this subject do
// this to that ticket" from the data already in hand.

func CanViewTicket(userID uint, roles []string, t *ticket.Ticket) bool {
	if user.HasRole(roles, user.RoleAdmin) || user.HasRole(roles, user.RoleProfessor) {
		return true
	}
	return t.UserID == userID
}

// CanEditTicketContent distinguishes its two denial kinds: a non-pending
// ticket is a state conflict regardless of who asks; a pending ticket edited
// by a stranger is a permission failure. Admins bypass ownership, never the
// status check.
func CanEditTicketContent(userID uint, roles []string, t *ticket.Ticket) error {
	if t.Status != ticket.StatusPending {
		return ErrTicketLocked
	}
	if user.HasRole(roles, user.RoleAdmin) || t.UserID == userID {
		return nil
	}
	return ErrTicketForbidden
}

func CanDeleteTicket(userID uint, t *ticket.Ticket) bool {
	return t.UserID == userID && t.Status != ticket.StatusApproved
}

func CanChangeStatus(roles []string) bool {
	return user.HasRole(roles, user.RoleAdmin)
}

func CanListAllTickets(roles []string) bool {
	return user.HasRole(roles, user.RoleAdmin) || user.HasRole(roles, user.RoleProfessor)
}
