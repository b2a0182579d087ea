package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente é a linha da tabela clientes: titular e cônjuge opcional.
type Cliente struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Nome          string `gorm:"type:text;not null" json:"nome"`
	CPF           string `gorm:"column:cpf;type:text;not null;index" json:"cpf"`
	RG            string `gorm:"column:rg;type:text" json:"rg"`
	OrgaoEmissor  string `gorm:"type:text" json:"orgao_emissor"`
	EstadoEmissor string `gorm:"type:text" json:"estado_emissor"`
	Profissao     string `json:"profissao"`
	// Datas ficam como texto: vêm do gerador de documentos já formatadas.
	DataNascimento string `json:"data_nascimento"`
	EstadoCivil    string `json:"estado_civil"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`

	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Complemento string `json:"complemento"`
	CEP         string `gorm:"column:cep;type:text" json:"cep"`
	Cidade      string `json:"cidade"`
	Estado      string `gorm:"type:text" json:"estado"`

	NomeConjuge           string `json:"nome_conjuge"`
	CPFConjuge            string `gorm:"column:cpf_conjuge;type:text" json:"cpf_conjuge"`
	RGConjuge             string `gorm:"column:rg_conjuge;type:text" json:"rg_conjuge"`
	OrgaoEmissorConjuge   string `gorm:"type:text" json:"orgao_emissor_conjuge"`
	EstadoEmissorConjuge  string `gorm:"type:text" json:"estado_emissor_conjuge"`
	ProfissaoConjuge      string `json:"profissao_conjuge"`
	DataNascimentoConjuge string `json:"data_nascimento_conjuge"`
	EstadoCivilConjuge    string `json:"estado_civil_conjuge"`
	EmailConjuge          string `json:"email_conjuge"`
	TelefoneConjuge       string `json:"telefone_conjuge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}

type Repository interface {
	Criar(db *gorm.DB, c *Cliente) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}
