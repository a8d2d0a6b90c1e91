package ticket

import (
	"time"

	"github.com/daniilsm/sickday-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func IsKnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Reason string

const (
	ReasonSickday     Reason = "SICKDAY"
	ReasonFamily      Reason = "FAMILY"
	ReasonCompetition Reason = "COMPETITION"
)

func IsKnownReason(r Reason) bool {
	switch r {
	case ReasonSickday, ReasonFamily, ReasonCompetition:
		return true
	}
	return false
}

const DefaultName = "Sick Day"

type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;default:'Sick Day'" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Reason      Reason    `gorm:"type:ticket_reason;default:'SICKDAY';not null" json:"reason"`
	Status      Status    `gorm:"type:ticket_status;default:'PENDING';not null" json:"status"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        user.User `gorm:"foreignKey:UserID" json:"user"`
	Proofs      []Proof   `gorm:"foreignKey:TicketID" json:"prooves"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Proof is a named reference to an uploaded document. Proofs are only ever
// written as a full batch belonging to one ticket.
type Proof struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Path     string `gorm:"size:300;not null" json:"path"`
	TicketID uint   `gorm:"not null;index" json:"-"`
}
