package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Ticket TicketRepo
	Proof  ProofRepo
	User   UserRepo
	Group  GroupRepo
	Course CourseRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket: NewTicketRepo(db),
		Proof:  NewProofRepo(db),
		User:   NewUserRepo(db),
		Group:  NewGroupRepo(db),
		Course: NewCourseRepo(db),
		db:     db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket: r.Ticket.WithTx(tx),
		Proof:  r.Proof.WithTx(tx),
		User:   r.User.WithTx(tx),
		Group:  r.Group.WithTx(tx),
		Course: r.Course.WithTx(tx),
		db:     tx,
	}
}

// ExecTx runs fn with every repository bound to one transaction. Repos built
// by hand without a database (mocked units) get the callback invoked
// directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
