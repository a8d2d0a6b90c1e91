package repository

import (
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(u *user.User) error
	FindByLogin(login string) (*user.User, error)
	FindByID(id uint) (*user.User, error)
	List(nameFilter string) ([]user.User, error)
	Save(u *user.User) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) FindByLogin(login string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *DBUserRepo) FindByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.Preload("Group.Course").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *DBUserRepo) List(nameFilter string) ([]user.User, error) {
	q := r.db.Preload("Group.Course")
	if nameFilter != "" {
		q = q.Where("name ILIKE ?", "%"+nameFilter+"%")
	}
	var users []user.User
	err := q.Order("name").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Omit("Group").Save(u).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}
