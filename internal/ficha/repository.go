package ficha

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=ficha

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KromaEnergia/api-fichas/internal/cliente"
	"github.com/KromaEnergia/api-fichas/internal/contrato"
	"github.com/KromaEnergia/api-fichas/internal/pagamento"
)

// Repository é o acesso às cinco tabelas da ficha. Cada método é uma ida ao banco.
type Repository interface {
	CriarCliente(ctx context.Context, c *cliente.Cliente) error
	CriarFicha(ctx context.Context, f *FichaNegociacao) error
	CriarContratos(ctx context.Context, cs []contrato.Contrato) error
	CriarPagamentos(ctx context.Context, ps []pagamento.Pagamento) error
	CriarFormasPagamentoSala(ctx context.Context, fs []pagamento.FormaPagamentoSala) error

	ListarCompletas(ctx context.Context) ([]FichaNegociacao, error)
	BuscarCompleta(ctx context.Context, id uuid.UUID) (*FichaNegociacao, error)
	BuscarSituacao(ctx context.Context, id uuid.UUID) (*SituacaoFicha, error)
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]any) error
	ListarResumo(ctx context.Context) ([]ResumoFicha, error)
}

type repositoryImpl struct {
	db         *gorm.DB
	clientes   cliente.Repository
	contratos  contrato.Repository
	pagamentos *pagamento.Repository
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{
		db:         db,
		clientes:   cliente.NewRepository(),
		contratos:  contrato.NewRepository(),
		pagamentos: pagamento.NewRepository(db),
	}
}

func (r *repositoryImpl) CriarCliente(ctx context.Context, c *cliente.Cliente) error {
	return r.clientes.Criar(r.db.WithContext(ctx), c)
}

// CriarFicha grava só o cabeçalho; os filhos vão em chamadas separadas.
func (r *repositoryImpl) CriarFicha(ctx context.Context, f *FichaNegociacao) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error
}

func (r *repositoryImpl) CriarContratos(ctx context.Context, cs []contrato.Contrato) error {
	return r.contratos.CriarEmLote(r.db.WithContext(ctx), cs)
}

func (r *repositoryImpl) CriarPagamentos(ctx context.Context, ps []pagamento.Pagamento) error {
	return r.pagamentos.WithDB(r.db.WithContext(ctx)).CriarPagamentos(ps)
}

func (r *repositoryImpl) CriarFormasPagamentoSala(ctx context.Context, fs []pagamento.FormaPagamentoSala) error {
	return r.pagamentos.WithDB(r.db.WithContext(ctx)).CriarFormasPagamentoSala(fs)
}

func porOrdem(db *gorm.DB) *gorm.DB {
	return db.Order("ordem")
}

// comFilhos carrega os filhos na ordem em que vieram na negociação.
func (r *repositoryImpl) comFilhos(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Contratos", porOrdem).
		Preload("Pagamentos", porOrdem).
		Preload("FormasPagamentoSala", porOrdem)
}

// ListarCompletas devolve as fichas da mais nova para a mais antiga.
func (r *repositoryImpl) ListarCompletas(ctx context.Context) ([]FichaNegociacao, error) {
	list := []FichaNegociacao{}
	err := r.comFilhos(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarCompleta(ctx context.Context, id uuid.UUID) (*FichaNegociacao, error) {
	var f FichaNegociacao
	err := r.comFilhos(ctx).First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) BuscarSituacao(ctx context.Context, id uuid.UUID) (*SituacaoFicha, error) {
	var s SituacaoFicha
	err := r.db.WithContext(ctx).
		Model(&FichaNegociacao{}).
		Select("status", "admin_responsavel").
		Where("id = ?", id).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AtualizarCampos não confere se a linha existe: id ausente atualiza zero linhas sem erro.
func (r *repositoryImpl) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&FichaNegociacao{}).
		Where("id = ?", id).
		Updates(campos).Error
}

func (r *repositoryImpl) ListarResumo(ctx context.Context) ([]ResumoFicha, error) {
	var list []ResumoFicha
	err := r.db.WithContext(ctx).
		Model(&FichaNegociacao{}).
		Select("status", "created_at").
		Find(&list).Error
	return list, err
}
