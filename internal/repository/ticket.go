package repository

import (
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(t *ticket.Ticket) (*ticket.Ticket, error)
	FindByID(id uint) (*ticket.Ticket, error)
	FindByOwner(userID uint) ([]ticket.Ticket, error)
	FindForReview(f ticket.ReviewFilter) ([]ticket.Ticket, int64, error)
	FindApproved(f ticket.ExportFilter) ([]ticket.Ticket, error)
	ReplaceContent(t *ticket.Ticket, proofs *[]ticket.Proof) (*ticket.Ticket, error)
	SetStatus(id uint, from, to ticket.Status) (int64, error)
	DeleteOwned(id, userID uint) error
	DeleteByOwner(userID uint) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	return &DBTicketRepo{db: tx}
}

func (r *DBTicketRepo) preloaded() *gorm.DB {
	return r.db.Preload("User.Group.Course").Preload("Proofs")
}

// Create inserts the ticket and its proof batch in one transaction and
// returns the row with owner and proofs attached.
func (r *DBTicketRepo) Create(t *ticket.Ticket) (*ticket.Ticket, error) {
	if err := r.db.Create(t).Error; err != nil {
		return nil, err
	}
	return r.FindByID(t.ID)
}

func (r *DBTicketRepo) FindByID(id uint) (*ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.preloaded().First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBTicketRepo) FindByOwner(userID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.preloaded().
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) reviewQuery(f ticket.ReviewFilter) *gorm.DB {
	q := r.db.Model(&ticket.Ticket{}).
		Joins("JOIN users ON users.id = tickets.user_id")

	if f.UserName != "" {
		q = q.Where("users.name ILIKE ?", "%"+f.UserName+"%")
	}
	if f.GroupID != nil {
		q = q.Where("users.group_id = ?", *f.GroupID)
	}
	if f.Reason != nil {
		q = q.Where("tickets.reason = ?", *f.Reason)
	}
	if f.Status != nil {
		q = q.Where("tickets.status = ?", *f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("tickets.start_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("tickets.end_date <= ?", *f.EndDate)
	}
	return q
}

// FindForReview returns one page of the review queue plus the total count of
// the filtered set, not just the page length.
func (r *DBTicketRepo) FindForReview(f ticket.ReviewFilter) ([]ticket.Ticket, int64, error) {
	var total int64
	if err := r.reviewQuery(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []ticket.Ticket
	err := r.reviewQuery(f).
		Preload("User.Group.Course").Preload("Proofs").
		Order("tickets.start_date DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *DBTicketRepo) FindApproved(f ticket.ExportFilter) ([]ticket.Ticket, error) {
	q := r.db.Model(&ticket.Ticket{}).
		Joins("JOIN users ON users.id = tickets.user_id").
		Where("tickets.status = ?", ticket.StatusApproved)

	if f.StartDate != nil {
		q = q.Where("tickets.start_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("tickets.end_date <= ?", *f.EndDate)
	}
	if f.GroupID != nil {
		q = q.Where("users.group_id = ?", *f.GroupID)
	}
	if f.CourseID != nil {
		q = q.Joins("JOIN groups ON groups.id = users.group_id").
			Where("groups.course_id = ?", *f.CourseID)
	}

	var tickets []ticket.Ticket
	err := q.Preload("User.Group.Course").Preload("Proofs").
		Order("tickets.start_date DESC").
		Find(&tickets).Error
	return tickets, err
}

// ReplaceContent saves the patched ticket fields and, when proofs is non-nil,
// replaces the whole proof batch: the old rows go away and the new list (which
// may be empty) takes their place.
func (r *DBTicketRepo) ReplaceContent(t *ticket.Ticket, proofs *[]ticket.Proof) (*ticket.Ticket, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "Proofs").Save(t).Error; err != nil {
			return err
		}
		if proofs == nil {
			return nil
		}
		if err := tx.Where("ticket_id = ?", t.ID).Delete(&ticket.Proof{}).Error; err != nil {
			return err
		}
		if len(*proofs) == 0 {
			return nil
		}
		return tx.Create(proofs).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(t.ID)
}

// SetStatus performs the guarded single-row transition; rows affected is zero
// when the ticket is gone or no longer in the expected state.
func (r *DBTicketRepo) SetStatus(id uint, from, to ticket.Status) (int64, error) {
	res := r.db.Model(&ticket.Ticket{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes a ticket only when it exists, belongs to userID and is
// not approved. All three misses surface as gorm.ErrRecordNotFound so callers
// cannot probe which one it was.
func (r *DBTicketRepo) DeleteOwned(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var t ticket.Ticket
		err := tx.
			Where("id = ? AND user_id = ? AND status <> ?", id, userID, ticket.StatusApproved).
			First(&t).Error
		if err != nil {
			return err
		}
		if err := tx.Where("ticket_id = ?", t.ID).Delete(&ticket.Proof{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ticket.Ticket{}, t.ID).Error
	})
}

// DeleteByOwner drops all of a user's tickets with their proofs. Runs inside
// the user-deletion transaction.
func (r *DBTicketRepo) DeleteByOwner(userID uint) error {
	sub := r.db.Model(&ticket.Ticket{}).Select("id").Where("user_id = ?", userID)
	if err := r.db.Where("ticket_id IN (?)", sub).Delete(&ticket.Proof{}).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ?", userID).Delete(&ticket.Ticket{}).Error
}
