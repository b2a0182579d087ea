package pagamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepository_VazioNaoTocaNoBanco(t *testing.T) {
	// DB nil: qualquer acesso ao banco entraria em pânico
	r := NewRepository(nil)

	assert.NoError(t, r.CriarPagamentos(nil))
	assert.NoError(t, r.CriarFormasPagamentoSala([]FormaPagamentoSala{}))
}

func TestWithDB_NilMantemOriginal(t *testing.T) {
	r := NewRepository(nil)
	assert.Nil(t, r.WithDB(nil).DB)
	assert.NotSame(t, r, r.WithDB(nil))
}
