// internal/pagamento/model.go
package pagamento

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pagamento é uma linha do plano de pagamento (entrada, parcelas, balões...).
// Campos numéricos aceitam NULL: linhas antigas podem não ter sido preenchidas.
type Pagamento struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FichaID uuid.UUID `gorm:"type:uuid;not null;index" json:"ficha_id"`

	Tipo               string              `gorm:"type:text;not null" json:"tipo"`
	Total              decimal.NullDecimal `gorm:"type:numeric" json:"total"`
	QtdParcelas        *int                `json:"qtd_parcelas"`
	ValorParcela       decimal.NullDecimal `gorm:"type:numeric" json:"valor_parcela"`
	FormaPagamento     *string             `gorm:"type:text" json:"forma_pagamento"`
	PrimeiroVencimento *string             `gorm:"type:text" json:"primeiro_vencimento"`
	Ordem              int                 `gorm:"not null;default:0" json:"ordem"`

	CreatedAt time.Time `json:"created_at"`
}

func (Pagamento) TableName() string {
	return "pagamentos"
}

// FormaPagamentoSala é um valor pago ainda na sala de vendas.
type FormaPagamentoSala struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FichaID uuid.UUID `gorm:"type:uuid;not null;index" json:"ficha_id"`

	FormaPagamento   *string             `gorm:"type:text" json:"forma_pagamento"`
	ValorTotal       decimal.NullDecimal `gorm:"type:numeric" json:"valor_total"`
	ValorDistribuido decimal.NullDecimal `gorm:"type:numeric" json:"valor_distribuido"`
	QuantidadeCotas  *int                `json:"quantidade_cotas"`
	Ordem            int                 `gorm:"not null;default:0" json:"ordem"`

	CreatedAt time.Time `json:"created_at"`
}

func (FormaPagamentoSala) TableName() string {
	return "formas_pagamento_sala"
}

// Migrate cria as duas tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{}, &FormaPagamentoSala{})
}
