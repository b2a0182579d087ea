package contrato

import "gorm.io/gorm"

type Repository interface {
	CriarEmLote(db *gorm.DB, contratos []Contrato) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// CriarEmLote grava todos os contratos num único INSERT (ignora se vazio).
func (r *repositoryImpl) CriarEmLote(db *gorm.DB, contratos []Contrato) error {
	if len(contratos) == 0 {
		return nil
	}
	return db.Create(&contratos).Error
}
