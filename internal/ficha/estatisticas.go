package ficha

import "context"

// Estatisticas conta as fichas por status. UltimaFicha é a criação mais
// recente em milissegundos, ausente quando não há fichas.
type Estatisticas struct {
	Total        int    `json:"total"`
	Pendentes    int    `json:"pendentes"`
	Visualizadas int    `json:"visualizadas"`
	Impressas    int    `json:"impressas"`
	EmAndamento  int    `json:"emAndamento"`
	Concluidas   int    `json:"concluidas"`
	Arquivadas   int    `json:"arquivadas"`
	UltimaFicha  *int64 `json:"ultimaFicha"`
}

// Estatisticas nunca falha: erro de leitura vira o resultado zerado.
func (s *Service) Estatisticas(ctx context.Context) Estatisticas {
	rows, err := s.repo.ListarResumo(ctx)
	if err != nil {
		s.log.Errorw("erro ao buscar estatísticas", "error", err)
		return Estatisticas{}
	}

	var e Estatisticas
	for _, r := range rows {
		e.Total++
		switch r.Status {
		case StatusPendente:
			e.Pendentes++
		case StatusVisualizada:
			e.Visualizadas++
		case StatusImpressa:
			e.Impressas++
		case StatusEmAndamento:
			e.EmAndamento++
		case StatusConcluida:
			e.Concluidas++
		case StatusArquivada:
			e.Arquivadas++
		}

		ms := r.CreatedAt.UnixMilli()
		if e.UltimaFicha == nil || ms > *e.UltimaFicha {
			e.UltimaFicha = &ms
		}
	}
	return e
}
