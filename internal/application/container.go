package application

import (
	"errors"
	"log"

	"github.com/daniilsm/sickday-go/internal/repository"
)

// ErrDataStore hides storage-level faults from callers; the original cause
// only goes to the log.
var ErrDataStore = errors.New("data store error")

func storeErr(scope string, err error) error {
	log.Printf("%s: repository error: %v", scope, err)
	return ErrDataStore
}

type Services struct {
	Auth   *AuthService
	User   *UserService
	Ticket *TicketService
	Proof  *ProofService
	Group  *GroupService
	Course *CourseService
	Export *ExportService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Auth:   NewAuthService(repos),
		User:   NewUserService(repos),
		Ticket: NewTicketService(repos),
		Proof:  NewProofService(repos),
		Group:  NewGroupService(repos),
		Course: NewCourseService(repos),
		Export: NewExportService(repos),
	}
}
