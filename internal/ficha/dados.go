package ficha

import "github.com/google/uuid"

// DadosCliente chega do gerador de documentos. Só nome e CPF são obrigatórios.
type DadosCliente struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	RG             string `json:"rg,omitempty"`
	OrgaoEmissor   string `json:"orgaoEmissor,omitempty"`
	EstadoEmissor  string `json:"estadoEmissor,omitempty"`
	Profissao      string `json:"profissao,omitempty"`
	DataNascimento string `json:"dataNascimento,omitempty"`
	EstadoCivil    string `json:"estadoCivil,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Logradouro     string `json:"logradouro,omitempty"`
	Numero         string `json:"numero,omitempty"`
	Bairro         string `json:"bairro,omitempty"`
	Complemento    string `json:"complemento,omitempty"`
	CEP            string `json:"cep,omitempty"`
	Cidade         string `json:"cidade,omitempty"`
	Estado         string `json:"estado,omitempty"`

	NomeConjuge           string `json:"nomeConjuge,omitempty"`
	CPFConjuge            string `json:"cpfConjuge,omitempty"`
	RGConjuge             string `json:"rgConjuge,omitempty"`
	OrgaoEmissorConjuge   string `json:"orgaoEmissorConjuge,omitempty"`
	EstadoEmissorConjuge  string `json:"estadoEmissorConjuge,omitempty"`
	ProfissaoConjuge      string `json:"profissaoConjuge,omitempty"`
	DataNascimentoConjuge string `json:"dataNascimentoConjuge,omitempty"`
	EstadoCivilConjuge    string `json:"estadoCivilConjuge,omitempty"`
	EmailConjuge          string `json:"emailConjuge,omitempty"`
	TelefoneConjuge       string `json:"telefoneConjuge,omitempty"`
}

// Contrato como aparece na negociação: valores em texto, do jeito que foram digitados.
type Contrato struct {
	Empreendimento string `json:"empreendimento"`
	CategoriaPreco string `json:"categoriaPreco"`
	Torre          string `json:"torre"`
	Apartamento    string `json:"apartamento"`
	Cota           string `json:"cota"`
	Valor          string `json:"valor"`
	TipoContrato   string `json:"tipoContrato"`
}

type InformacaoPagamento struct {
	Tipo               string `json:"tipo"`
	Total              string `json:"total"`
	QtdParcelas        string `json:"qtdParcelas"`
	ValorParcela       string `json:"valorParcela"`
	FormaPagamento     string `json:"formaPagamento"`
	PrimeiroVencimento string `json:"primeiroVencimento"`
}

type ParcelaPagaSala struct {
	Tipo             string `json:"tipo"`
	ValorTotal       string `json:"valorTotal"`
	ValorDistribuido string `json:"valorDistribuido"`
	QuantidadeCotas  string `json:"quantidadeCotas"`
	// Só é preenchido na leitura, com a forma de pagamento gravada.
	FormasPagamento []string `json:"formasPagamento,omitempty"`
}

type DadosNegociacao struct {
	Liner     string `json:"liner"`
	Closer    string `json:"closer"`
	LiderSala string `json:"liderSala"`
	NomeSala  string `json:"nomeSala"`
	TipoVenda string `json:"tipoVenda"`

	Contratos            []Contrato            `json:"contratos"`
	InformacoesPagamento []InformacaoPagamento `json:"informacoesPagamento"`
	ParcelasPagasSala    []ParcelaPagaSala     `json:"parcelasPagasSala"`
}

// FichaCompleta é a ficha remontada a partir das cinco tabelas.
// Timestamps em milissegundos desde a época.
type FichaCompleta struct {
	ID                 uuid.UUID       `json:"id"`
	DadosCliente       DadosCliente    `json:"dadosCliente"`
	DadosNegociacao    DadosNegociacao `json:"dadosNegociacao"`
	NomeConsultor      string          `json:"nomeConsultor"`
	Timestamp          int64           `json:"timestamp"`
	Status             Status          `json:"status"`
	AdminResponsavel   string          `json:"adminResponsavel,omitempty"`
	TimestampInicio    *int64          `json:"timestampInicio,omitempty"`
	TimestampConclusao *int64          `json:"timestampConclusao,omitempty"`
}
