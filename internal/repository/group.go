package repository

import (
	"github.com/daniilsm/sickday-go/internal/domain/group"
	"gorm.io/gorm"
)

type GroupRepo interface {
	GetAll() ([]group.Group, error)
	FindByID(id uint) (*group.Group, error)
	ListByCourse(courseID uint) ([]group.Group, error)
	Create(g *group.Group) error
	WithTx(tx *gorm.DB) GroupRepo
}

type DBGroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *DBGroupRepo {
	return &DBGroupRepo{db: db}
}

func (r *DBGroupRepo) WithTx(tx *gorm.DB) GroupRepo {
	return &DBGroupRepo{db: tx}
}

func (r *DBGroupRepo) GetAll() ([]group.Group, error) {
	var groups []group.Group
	err := r.db.Preload("Course").Order("identifier").Find(&groups).Error
	return groups, err
}

func (r *DBGroupRepo) FindByID(id uint) (*group.Group, error) {
	var g group.Group
	if err := r.db.Preload("Course").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *DBGroupRepo) ListByCourse(courseID uint) ([]group.Group, error) {
	var groups []group.Group
	err := r.db.Where("course_id = ?", courseID).Order("identifier").Find(&groups).Error
	return groups, err
}

func (r *DBGroupRepo) Create(g *group.Group) error {
	return r.db.Create(g).Error
}
