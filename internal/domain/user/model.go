package user

import (
	"time"

	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/lib/pq"
)

type Role = string

const (
	RoleStudent   Role = "STUDENT"
	RoleProfessor Role = "PROFESSOR"
	RoleAdmin     Role = "ADMIN"
)

// Roles a user may hold; membership is non-exclusive.
var KnownRoles = []Role{RoleStudent, RoleProfessor, RoleAdmin}

func IsKnownRole(r Role) bool {
	for _, known := range KnownRoles {
		if r == known {
			return true
		}
	}
	return false
}

func HasRole(roles []string, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Login     string         `gorm:"size:50;not null;unique" json:"login"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Roles     pq.StringArray `gorm:"type:text[];not null" json:"roles"`
	GroupID   *uint          `gorm:"index" json:"group_id,omitempty"`
	Group     *group.Group   `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

func (u *User) HasRole(r Role) bool {
	return HasRole(u.Roles, r)
}
