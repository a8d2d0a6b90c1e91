package application

import (
	"errors"

	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/daniilsm/sickday-go/internal/repository"
	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type GroupService struct {
	Repos *repository.Repos
}

func NewGroupService(repos *repository.Repos) *GroupService {
	return &GroupService{Repos: repos}
}

func (s *GroupService) List() ([]group.Group, error) {
	groups, err := s.Repos.Group.GetAll()
	if err != nil {
		return nil, storeErr("group list", err)
	}
	return groups, nil
}

func (s *GroupService) Create(input group.CreateGroupDTO) (*group.Group, error) {
	if _, err := s.Repos.Course.FindByID(input.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, storeErr("group create", err)
	}
	g := &group.Group{Identifier: input.Identifier, CourseID: input.CourseID}
	if err := s.Repos.Group.Create(g); err != nil {
		return nil, storeErr("group create", err)
	}
	return s.Repos.Group.FindByID(g.ID)
}
