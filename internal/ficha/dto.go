package ficha

// criarFichaRequest é o corpo de POST /fichas, enviado pelo gerador de documentos.
type criarFichaRequest struct {
	DadosCliente    DadosCliente    `json:"dadosCliente"`
	DadosNegociacao DadosNegociacao `json:"dadosNegociacao"`
	NomeConsultor   string          `json:"nomeConsultor"`
}

type criarFichaResponse struct {
	ID string `json:"id"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

type mensagemResponse struct {
	Message string `json:"message"`
}
