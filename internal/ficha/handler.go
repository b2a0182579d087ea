// internal/ficha/handler.go
package ficha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/KromaEnergia/api-fichas/internal/auth"
	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// Notificador recebe o aviso de ficha nova.
type Notificador interface {
	FichaCriada(ctx context.Context, id uuid.UUID, nomeConsultor string)
}

type Handler struct {
	Service     *Service
	Notificador Notificador
	log         *logger.Logger
}

func NewHandler(svc *Service, n Notificador, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{Service: svc, Notificador: n, log: log.WithComponent("ficha_http")}
}

const idPath = "/fichas/{id:[0-9a-fA-F-]{36}}"

// Routes registra as rotas. Só a criação é pública.
func (h *Handler) Routes(r *mux.Router, protegido mux.MiddlewareFunc) {
	r.HandleFunc("/fichas", h.Criar).Methods(http.MethodPost, http.MethodOptions)

	p := func(f http.HandlerFunc) http.Handler { return protegido(f) }
	r.Handle("/fichas", p(h.Listar)).Methods(http.MethodGet, http.MethodOptions)
	r.Handle("/fichas/estatisticas", p(h.Estatisticas)).Methods(http.MethodGet, http.MethodOptions)
	r.Handle(idPath, p(h.Buscar)).Methods(http.MethodGet, http.MethodOptions)
	r.Handle(idPath+"/status", p(h.AtualizarStatus)).Methods(http.MethodPatch, http.MethodOptions)
	r.Handle(idPath+"/pegar", p(h.Pegar)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle(idPath+"/encerrar", p(h.Encerrar)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle(idPath+"/liberar", p(h.Liberar)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle(idPath+"/arquivar", p(h.Arquivar)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle(idPath+"/desarquivar", p(h.Desarquivar)).Methods(http.MethodPost, http.MethodOptions)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func idDaRota(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func adminDaRequisicao(w http.ResponseWriter, r *http.Request) (string, bool) {
	nome, ok := auth.AdminDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
	}
	return nome, ok
}

/* ================== POST /fichas ================== */

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarFichaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.DadosCliente.Nome) == "" || strings.TrimSpace(req.DadosCliente.CPF) == "" {
		h.log.Debugw("ficha rejeitada sem nome ou CPF", "consultor", req.NomeConsultor)
		http.Error(w, "nome e CPF do cliente são obrigatórios", http.StatusBadRequest)
		return
	}

	id, err := h.Service.Salvar(r.Context(), req.DadosCliente, req.DadosNegociacao, req.NomeConsultor)
	if err != nil {
		var pe *PersistenceError
		if errors.As(err, &pe) {
			http.Error(w, "Erro ao salvar "+pe.Etapa, http.StatusInternalServerError)
			return
		}
		http.Error(w, "Erro ao salvar ficha", http.StatusInternalServerError)
		return
	}

	// O aviso roda fora da requisição e sobrevive ao fim dela.
	if h.Notificador != nil {
		go h.Notificador.FichaCriada(context.WithoutCancel(r.Context()), id, req.NomeConsultor)
	}
	writeJSON(w, http.StatusCreated, criarFichaResponse{ID: id.String()})
}

/* ================== GET ================== */

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.Listar(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar fichas", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	f, ok := h.Service.Buscar(r.Context(), id)
	if !ok {
		http.Error(w, "Ficha não encontrada", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Estatisticas(r.Context()))
}

/* ================== Ciclo de vida ================== */

func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	admin, ok := adminDaRequisicao(w, r)
	if !ok {
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.responder(w, h.Service.AtualizarStatus(r.Context(), id, status, admin), "Status atualizado")
}

func (h *Handler) Pegar(w http.ResponseWriter, r *http.Request) {
	h.comAdmin(w, r, h.Service.PegarParaFazer, "Ficha atribuída")
}

func (h *Handler) Encerrar(w http.ResponseWriter, r *http.Request) {
	h.comAdmin(w, r, h.Service.EncerrarAtendimento, "Atendimento encerrado")
}

func (h *Handler) Liberar(w http.ResponseWriter, r *http.Request) {
	h.comAdmin(w, r, h.Service.LiberarFicha, "Ficha liberada")
}

func (h *Handler) Arquivar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDaRota(w, r); ok {
		h.responder(w, h.Service.Arquivar(r.Context(), id), "Ficha arquivada")
	}
}

func (h *Handler) Desarquivar(w http.ResponseWriter, r *http.Request) {
	if id, ok := idDaRota(w, r); ok {
		h.responder(w, h.Service.Desarquivar(r.Context(), id), "Ficha desarquivada")
	}
}

func (h *Handler) comAdmin(w http.ResponseWriter, r *http.Request,
	op func(context.Context, uuid.UUID, string) bool, msg string) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	admin, ok := adminDaRequisicao(w, r)
	if !ok {
		return
	}
	h.responder(w, op(r.Context(), id, admin), msg)
}

// responder traduz o bool do serviço: false vira 409, sem distinguir o motivo.
func (h *Handler) responder(w http.ResponseWriter, ok bool, msg string) {
	if !ok {
		http.Error(w, "Operação não permitida para a ficha", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, mensagemResponse{Message: msg})
}
