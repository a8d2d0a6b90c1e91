package group

import (
	"time"

	"github.com/daniilsm/sickday-go/internal/domain/course"
)

// Group is reference data: a study group inside exactly one course.
// The course side carries no back-reference; group lookups by course go
// through the repository.
type Group struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Identifier string         `gorm:"size:50;not null;unique" json:"identifier"`
	CourseID   uint           `gorm:"not null;index" json:"course_id"`
	Course     *course.Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
}
