package application

import (
	"github.com/daniilsm/sickday-go/internal/domain/course"
	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/daniilsm/sickday-go/internal/repository"
)

type CourseService struct {
	Repos *repository.Repos
}

func NewCourseService(repos *repository.Repos) *CourseService {
	return &CourseService{Repos: repos}
}

// CourseWithGroups is the list view: courses never hold a groups slice on the
// model, the back-lookup happens here.
type CourseWithGroups struct {
	course.Course
	Groups []group.Group `json:"groups"`
}

func (s *CourseService) List() ([]CourseWithGroups, error) {
	courses, err := s.Repos.Course.GetAll()
	if err != nil {
		return nil, storeErr("course list", err)
	}
	out := make([]CourseWithGroups, 0, len(courses))
	for _, c := range courses {
		groups, err := s.Repos.Group.ListByCourse(c.ID)
		if err != nil {
			return nil, storeErr("course list", err)
		}
		out = append(out, CourseWithGroups{Course: c, Groups: groups})
	}
	return out, nil
}

func (s *CourseService) Create(input course.CreateCourseDTO) (*course.Course, error) {
	c := &course.Course{Name: input.Name, Identifier: input.Identifier}
	if err := s.Repos.Course.Create(c); err != nil {
		return nil, storeErr("course create", err)
	}
	return c, nil
}
