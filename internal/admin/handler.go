package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// EmissorToken é o que o login precisa do pacote auth.
type EmissorToken interface {
	GerarToken(adminID uint, nome string) (string, error)
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type createAdminRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Emissor    EmissorToken
	log        *logger.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, emissor EmissorToken, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Emissor:    emissor,
		log:        log.WithComponent("admin"),
	}
}

// Routes registra o login (público) e o cadastro (protegido).
func (h *Handler) Routes(r *mux.Router, protegido mux.MiddlewareFunc) {
	r.HandleFunc("/admins/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/admins", protegido(http.HandlerFunc(h.Criar))).Methods(http.MethodPost, http.MethodOptions)
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Errorw("erro ao buscar admin", "error", err)
		}
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !CheckSenha(a.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := h.Emissor.GerarToken(a.ID, a.Nome)
	if err != nil {
		h.log.Errorw("erro ao gerar token", "admin_id", a.ID, "error", err)
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token, "nome": a.Nome})
}

// Criar cadastra um novo admin. Só outro admin pode fazer isso.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		http.Error(w, "nome, email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a := Admin{Nome: req.Nome, Email: req.Email, Senha: hash}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		h.log.Errorw("erro ao criar admin", "email", req.Email, "error", err)
		http.Error(w, "erro ao criar admin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}
