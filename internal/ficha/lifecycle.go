package ficha

import (
	"context"

	"github.com/google/uuid"
)

// AtualizarStatus grava o status sem conferir o estado atual e ajusta os
// campos derivados. admin só é usado na entrada em em_andamento.
func (s *Service) AtualizarStatus(ctx context.Context, id uuid.UUID, status Status, admin string) bool {
	agora := s.agora()
	campos := map[string]any{
		"status":     string(status),
		"updated_at": agora,
	}

	switch status {
	case StatusEmAndamento:
		if admin != "" {
			campos["admin_responsavel"] = admin
			campos["timestamp_inicio"] = agora
		}
	case StatusConcluida:
		campos["timestamp_conclusao"] = agora
	case StatusPendente:
		campos["admin_responsavel"] = nil
		campos["timestamp_inicio"] = nil
		campos["timestamp_conclusao"] = nil
	}

	if err := s.repo.AtualizarCampos(ctx, id, campos); err != nil {
		s.log.Errorw("erro ao atualizar status", "ficha_id", id, "status", status, "error", err)
		return false
	}
	s.log.Infow("status atualizado", "ficha_id", id, "status", status, "admin", admin)
	return true
}

func (s *Service) situacao(ctx context.Context, id uuid.UUID) (*SituacaoFicha, bool) {
	sit, err := s.repo.BuscarSituacao(ctx, id)
	if err != nil {
		s.logLeitura(err, id)
		return nil, false
	}
	return sit, true
}

func (s *Service) recusada(op string, id uuid.UUID, admin string, sit *SituacaoFicha) {
	s.log.Warnw("transição recusada", "op", op, "ficha_id", id, "admin", admin,
		"status", sit.Status, "responsavel", textoOpcional(sit.AdminResponsavel))
}

// PegarParaFazer atribui a ficha ao admin se ela estiver pendente.
// Leitura e escrita são separadas; dois admins simultâneos podem ambos passar.
func (s *Service) PegarParaFazer(ctx context.Context, id uuid.UUID, admin string) bool {
	sit, ok := s.situacao(ctx, id)
	if !ok {
		return false
	}
	if sit.Status != StatusPendente {
		s.recusada("pegar", id, admin, sit)
		return false
	}
	return s.AtualizarStatus(ctx, id, StatusEmAndamento, admin)
}

// EncerrarAtendimento conclui a ficha em andamento do próprio admin.
// admin_responsavel é mantido.
func (s *Service) EncerrarAtendimento(ctx context.Context, id uuid.UUID, admin string) bool {
	sit, ok := s.situacao(ctx, id)
	if !ok {
		return false
	}
	if !sit.ResponsavelE(admin) || sit.Status != StatusEmAndamento {
		s.recusada("encerrar", id, admin, sit)
		return false
	}
	return s.AtualizarStatus(ctx, id, StatusConcluida, "")
}

// LiberarFicha devolve a ficha para pendente. O status atual não é conferido.
func (s *Service) LiberarFicha(ctx context.Context, id uuid.UUID, admin string) bool {
	sit, ok := s.situacao(ctx, id)
	if !ok {
		return false
	}
	if !sit.ResponsavelE(admin) {
		s.recusada("liberar", id, admin, sit)
		return false
	}
	return s.AtualizarStatus(ctx, id, StatusPendente, "")
}

func (s *Service) Arquivar(ctx context.Context, id uuid.UUID) bool {
	return s.AtualizarStatus(ctx, id, StatusArquivada, "")
}

// Desarquivar sempre volta para concluida; o status anterior não é guardado.
func (s *Service) Desarquivar(ctx context.Context, id uuid.UUID) bool {
	return s.AtualizarStatus(ctx, id, StatusConcluida, "")
}
