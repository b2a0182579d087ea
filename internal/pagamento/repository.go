// internal/pagamento/repository.go
package pagamento

import "gorm.io/gorm"

// Repository encapsula a gravação das duas tabelas de pagamento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: com contexto).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CriarPagamentos grava o plano de pagamento de uma vez (ignora se vazio).
func (r *Repository) CriarPagamentos(pagamentos []Pagamento) error {
	if len(pagamentos) == 0 {
		return nil
	}
	return r.DB.Create(&pagamentos).Error
}

// CriarFormasPagamentoSala grava os valores pagos em sala (ignora se vazio).
func (r *Repository) CriarFormasPagamentoSala(formas []FormaPagamentoSala) error {
	if len(formas) == 0 {
		return nil
	}
	return r.DB.Create(&formas).Error
}
