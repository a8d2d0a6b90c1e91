package ticket

import "time"

type CreateTicketDTO struct {
	Name        *string  `json:"name"`
	Description string   `json:"description" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Reason      *Reason  `json:"reason"`
	Proofs      []string `json:"prooves"`
}

// UpdateTicketDTO is a partial patch: nil fields are left untouched. The
// proof list follows full-replace semantics: nil means keep, an empty slice
// clears, a non-empty slice replaces everything.
type UpdateTicketDTO struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Reason      *Reason   `json:"reason"`
	EndDate     *string   `json:"endDate"`
	Proofs      *[]string `json:"prooves"`
}

type ChangeStatusDTO struct {
	Status Status `json:"status" binding:"required"`
}

// ReviewFilter narrows the admin/professor review queue.
type ReviewFilter struct {
	UserName  string
	GroupID   *uint
	Reason    *Reason
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// ExportFilter selects approved tickets for spreadsheet export.
type ExportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	CourseID  *uint
	GroupID   *uint
}

// ParseDate accepts the two wire layouts seen from clients: a bare ISO date
// or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
