package repository

import (
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"gorm.io/gorm"
)

type ProofRepo interface {
	FindByID(id uint) (*ticket.Proof, error)
	Save(p *ticket.Proof) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) ProofRepo
}

type DBProofRepo struct {
	db *gorm.DB
}

func NewProofRepo(db *gorm.DB) *DBProofRepo {
	return &DBProofRepo{db: db}
}

func (r *DBProofRepo) WithTx(tx *gorm.DB) ProofRepo {
	return &DBProofRepo{db: tx}
}

func (r *DBProofRepo) FindByID(id uint) (*ticket.Proof, error) {
	var p ticket.Proof
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DBProofRepo) Save(p *ticket.Proof) error {
	return r.db.Save(p).Error
}

func (r *DBProofRepo) Delete(id uint) error {
	res := r.db.Delete(&ticket.Proof{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
