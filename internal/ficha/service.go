package ficha

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// Service concentra gravação, leitura e ciclo de vida das fichas.
type Service struct {
	repo  Repository
	log   *logger.Logger
	agora func() time.Time
}

func NewService(repo Repository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		log:   log.WithComponent("ficha"),
		agora: time.Now,
	}
}

// Salvar grava cliente, cabeçalho e filhos, nessa ordem e sem transação.
// Se uma etapa falhar, as anteriores permanecem no banco.
func (s *Service) Salvar(ctx context.Context, dc DadosCliente, dn DadosNegociacao, nomeConsultor string) (uuid.UUID, error) {
	c := clienteParaRegistro(dc)
	if err := s.repo.CriarCliente(ctx, &c); err != nil {
		return uuid.Nil, s.falhaGravacao(EtapaCliente, err)
	}

	f := fichaParaRegistro(c.ID, dn, nomeConsultor)
	if err := s.repo.CriarFicha(ctx, &f); err != nil {
		return uuid.Nil, s.falhaGravacao(EtapaFicha, err, "cliente_id", c.ID)
	}

	if len(dn.Contratos) > 0 {
		if err := s.repo.CriarContratos(ctx, contratosParaRegistro(f.ID, dn.Contratos)); err != nil {
			return uuid.Nil, s.falhaGravacao(EtapaContratos, err, "ficha_id", f.ID)
		}
	}

	if ps := pagamentosParaRegistro(f.ID, dn.InformacoesPagamento); len(ps) > 0 {
		if err := s.repo.CriarPagamentos(ctx, ps); err != nil {
			return uuid.Nil, s.falhaGravacao(EtapaPagamentos, err, "ficha_id", f.ID)
		}
	}

	if fs := parcelasSalaParaRegistro(f.ID, dn.ParcelasPagasSala); len(fs) > 0 {
		if err := s.repo.CriarFormasPagamentoSala(ctx, fs); err != nil {
			return uuid.Nil, s.falhaGravacao(EtapaParcelasSala, err, "ficha_id", f.ID)
		}
	}

	s.log.Infow("ficha salva", "ficha_id", f.ID, "consultor", nomeConsultor)
	return f.ID, nil
}

func (s *Service) falhaGravacao(etapa string, err error, kv ...any) error {
	s.log.Errorw("erro ao salvar ficha", append([]any{"etapa", etapa, "error", err}, kv...)...)
	return &PersistenceError{Etapa: etapa, Err: err}
}

// Listar devolve todas as fichas, mais recentes primeiro.
func (s *Service) Listar(ctx context.Context) ([]FichaCompleta, error) {
	rows, err := s.repo.ListarCompletas(ctx)
	if err != nil {
		s.log.Errorw("erro ao listar fichas", "error", err)
		return nil, &RetrievalError{Err: err}
	}

	out := make([]FichaCompleta, 0, len(rows))
	for _, r := range rows {
		out = append(out, registroParaFicha(r))
	}
	return out, nil
}

// Buscar devolve (nil, false) tanto para id inexistente quanto para erro de leitura.
func (s *Service) Buscar(ctx context.Context, id uuid.UUID) (*FichaCompleta, bool) {
	row, err := s.repo.BuscarCompleta(ctx, id)
	if err != nil {
		s.logLeitura(err, id)
		return nil, false
	}
	f := registroParaFicha(*row)
	return &f, true
}

func (s *Service) logLeitura(err error, id uuid.UUID) {
	if errors.Is(err, ErrNaoEncontrada) {
		s.log.Debugw("ficha não encontrada", "ficha_id", id)
		return
	}
	s.log.Errorw("erro ao buscar ficha", "ficha_id", id, "error", err)
}
