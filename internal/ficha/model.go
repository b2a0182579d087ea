package ficha

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-fichas/internal/cliente"
	"github.com/KromaEnergia/api-fichas/internal/contrato"
	"github.com/KromaEnergia/api-fichas/internal/pagamento"
)

// FichaNegociacao é o cabeçalho da ficha; os filhos apontam para ele via ficha_id.
type FichaNegociacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index" json:"cliente_id"`

	Liner         string `gorm:"type:text" json:"liner"`
	Closer        string `gorm:"type:text" json:"closer"`
	LiderSala     string `gorm:"type:text" json:"lider_sala"`
	NomeSala      string `gorm:"type:text" json:"nome_sala"`
	TipoVenda     string `gorm:"type:text" json:"tipo_venda"`
	NomeConsultor string `gorm:"type:text;not null" json:"nome_consultor"`

	Status             Status     `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	AdminResponsavel   *string    `gorm:"type:text" json:"admin_responsavel"`
	TimestampInicio    *time.Time `json:"timestamp_inicio"`
	TimestampConclusao *time.Time `json:"timestamp_conclusao"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cliente             cliente.Cliente                `gorm:"foreignKey:ClienteID" json:"clientes"`
	Contratos           []contrato.Contrato            `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"contratos"`
	Pagamentos          []pagamento.Pagamento          `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"pagamentos"`
	FormasPagamentoSala []pagamento.FormaPagamentoSala `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"formas_pagamento_sala"`
}

func (FichaNegociacao) TableName() string {
	return "fichas_negociacao"
}

// SituacaoFicha é o recorte lido pelas guardas do ciclo de vida.
type SituacaoFicha struct {
	Status           Status
	AdminResponsavel *string
}

// ResponsavelE informa se a ficha está atribuída exatamente a admin.
func (s SituacaoFicha) ResponsavelE(admin string) bool {
	return s.AdminResponsavel != nil && *s.AdminResponsavel == admin
}

// ResumoFicha é o recorte lido pelas estatísticas.
type ResumoFicha struct {
	Status    Status
	CreatedAt time.Time
}

// Migrate cria as cinco tabelas na ordem das chaves estrangeiras.
func Migrate(db *gorm.DB) error {
	if err := cliente.Migrate(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(&FichaNegociacao{}); err != nil {
		return err
	}
	if err := contrato.Migrate(db); err != nil {
		return err
	}
	return pagamento.Migrate(db)
}
