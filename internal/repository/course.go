package repository

import (
	"github.com/daniilsm/sickday-go/internal/domain/course"
	"gorm.io/gorm"
)

type CourseRepo interface {
	GetAll() ([]course.Course, error)
	FindByID(id uint) (*course.Course, error)
	Create(c *course.Course) error
	WithTx(tx *gorm.DB) CourseRepo
}

type DBCourseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *DBCourseRepo {
	return &DBCourseRepo{db: db}
}

func (r *DBCourseRepo) WithTx(tx *gorm.DB) CourseRepo {
	return &DBCourseRepo{db: tx}
}

func (r *DBCourseRepo) GetAll() ([]course.Course, error) {
	var courses []course.Course
	err := r.db.Order("identifier").Find(&courses).Error
	return courses, err
}

func (r *DBCourseRepo) FindByID(id uint) (*course.Course, error) {
	var c course.Course
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DBCourseRepo) Create(c *course.Course) error {
	return r.db.Create(c).Error
}
