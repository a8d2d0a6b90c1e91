package application

import (
	"errors"

	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUnknownRole   = errors.New("unknown role")
	ErrGroupNotFound = errors.New("group not found")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) List(nameFilter string) ([]user.User, error) {
	users, err := s.Repos.User.List(nameFilter)
	if err != nil {
		return nil, storeErr("user list", err)
	}
	return users, nil
}

func (s *UserService) FindByID(id uint) (*user.User, error) {
	u, err := s.Repos.User.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeErr("user get", err)
	}
	return u, nil
}

// Delete removes the user together with all owned tickets and their proofs.
// The cascade runs proofs, then tickets, then the user, in one transaction;
// a failure anywhere rolls the whole thing back.
func (s *UserService) Delete(id uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.User.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return storeErr("user delete", err)
		}
		if err := r.Ticket.DeleteByOwner(id); err != nil {
			return storeErr("user delete", err)
		}
		if err := r.User.Delete(id); err != nil {
			return storeErr("user delete", err)
		}
		return nil
	})
}

// GrantRole adds a role from the closed set; granting a role the user
// already holds is a no-op.
func (s *UserService) GrantRole(id uint, role user.Role) (*user.User, error) {
	if !user.IsKnownRole(role) {
		return nil, ErrUnknownRole
	}
	u, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
		if err := s.Repos.User.Save(u); err != nil {
			return nil, storeErr("grant role", err)
		}
	}
	return u, nil
}

func (s *UserService) RevokeRole(id uint, role user.Role) (*user.User, error) {
	if !user.IsKnownRole(role) {
		return nil, ErrUnknownRole
	}
	u, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	kept := u.Roles[:0]
	for _, have := range u.Roles {
		if have != role {
			kept = append(kept, have)
		}
	}
	u.Roles = kept
	if err := s.Repos.User.Save(u); err != nil {
		return nil, storeErr("revoke role", err)
	}
	return u, nil
}

// AssignGroup moves the user to another group, or out of any group when
// groupID is nil.
func (s *UserService) AssignGroup(id uint, groupID *uint) (*user.User, error) {
	u, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if groupID != nil {
		if _, err := s.Repos.Group.FindByID(*groupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGroupNotFound
			}
			return nil, storeErr("assign group", err)
		}
	}
	u.GroupID = groupID
	u.Group = nil
	if err := s.Repos.User.Save(u); err != nil {
		return nil, storeErr("assign group", err)
	}
	return s.FindByID(id)
}
