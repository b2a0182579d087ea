package admin

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Admin, error)
	Salvar(db *gorm.DB, a *Admin) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// BuscarPorEmail ignora caixa e espaços nas pontas.
func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Admin, error) {
	var a Admin
	err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Admin) error {
	return db.Save(a).Error
}
