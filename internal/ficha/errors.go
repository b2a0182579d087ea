package ficha

import (
	"errors"
	"fmt"
)

// ErrNaoEncontrada é devolvido pelo repositório quando o id não existe.
var ErrNaoEncontrada = errors.New("ficha não encontrada")

// Etapas da gravação de uma ficha, na ordem em que acontecem.
const (
	EtapaCliente      = "cliente"
	EtapaFicha        = "ficha"
	EtapaContratos    = "contratos"
	EtapaPagamentos   = "pagamentos"
	EtapaParcelasSala = "parcelas sala"
)

// PersistenceError indica que uma escrita falhou. As etapas anteriores
// da mesma chamada continuam gravadas.
type PersistenceError struct {
	Etapa string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("falha ao salvar ficha: erro ao salvar %s: %v", e.Etapa, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RetrievalError indica falha de leitura na listagem.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("falha ao buscar fichas: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
