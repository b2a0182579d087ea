package contrato

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TipoDigital é o tipo assumido quando a negociação não informa nenhum.
const TipoDigital = "digital"

// Contrato é uma cota vendida dentro de uma ficha de negociação.
// Ordem é a posição na lista enviada; a leitura devolve os contratos nessa ordem.
type Contrato struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FichaID uuid.UUID `gorm:"type:uuid;not null;index" json:"ficha_id"`

	Empreendimento string          `gorm:"type:text;not null" json:"empreendimento"`
	CategoriaPreco string          `gorm:"type:text" json:"categoria_preco"`
	Torre          string          `gorm:"type:text" json:"torre"`
	Apartamento    string          `gorm:"type:text" json:"apartamento"`
	Cota           string          `gorm:"type:text;not null" json:"cota"`
	Valor          decimal.Decimal `gorm:"type:numeric;not null" json:"valor"`
	TipoContrato   string          `gorm:"type:text;not null;default:'digital'" json:"tipo_contrato"`
	Ordem          int             `gorm:"not null;default:0" json:"ordem"`

	CreatedAt time.Time `json:"created_at"`
}

func (Contrato) TableName() string {
	return "contratos"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
