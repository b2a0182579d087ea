package ficha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KromaEnergia/api-fichas/internal/auth"
	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// notificadorFake registra os avisos e, se liberar não for nil, só retorna
// depois que o teste fechar o canal.
type notificadorFake struct {
	mu      sync.Mutex
	ids     []uuid.UUID
	ctxs    []context.Context
	liberar chan struct{}
	feitos  chan uuid.UUID
}

func novoNotificador() *notificadorFake {
	return &notificadorFake{feitos: make(chan uuid.UUID, 8)}
}

func (n *notificadorFake) FichaCriada(ctx context.Context, id uuid.UUID, _ string) {
	if n.liberar != nil {
		<-n.liberar
	}
	n.mu.Lock()
	n.ids = append(n.ids, id)
	n.ctxs = append(n.ctxs, ctx)
	n.mu.Unlock()
	n.feitos <- id
}

func (n *notificadorFake) recebidos() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]uuid.UUID(nil), n.ids...)
}

func (n *notificadorFake) esperar(t *testing.T) uuid.UUID {
	t.Helper()
	select {
	case id := <-n.feitos:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("aviso de ficha criada não chegou")
		return uuid.Nil
	}
}

type ambienteHTTP struct {
	router *mux.Router
	repo   *MockRepository
	notif  *notificadorFake
	token  string
}

func novoAmbiente(t *testing.T) *ambienteHTTP {
	t.Helper()
	s, repo := novoService(t)
	emissor := auth.NewEmissor("segredo-teste", time.Hour)
	tok, err := emissor.GerarToken(1, "Ana")
	require.NoError(t, err)

	notif := novoNotificador()
	r := mux.NewRouter()
	NewHandler(s, notif, logger.Nop()).Routes(r, emissor.MiddlewareAutenticacao)
	return &ambienteHTTP{router: r, repo: repo, notif: notif, token: tok}
}

func (a *ambienteHTTP) do(method, path, body string, autenticado bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if autenticado {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Criar(t *testing.T) {
	a := novoAmbiente(t)
	fichaID := uuid.New()
	a.repo.EXPECT().CriarCliente(gomock.Any(), gomock.Any()).Return(nil)
	a.repo.EXPECT().CriarFicha(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *FichaNegociacao) error {
			f.ID = fichaID
			return nil
		})

	body := `{"dadosCliente":{"nome":"João","cpf":"123"},"dadosNegociacao":{},"nomeConsultor":"Carlos"}`
	rec := a.do(http.MethodPost, "/fichas", body, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fichaID.String(), resp["id"])
	assert.Equal(t, fichaID, a.notif.esperar(t))
	assert.Equal(t, []uuid.UUID{fichaID}, a.notif.recebidos())
}

func TestHTTP_CriarNaoEsperaAviso(t *testing.T) {
	s, repo := novoService(t)
	fichaID := uuid.New()
	repo.EXPECT().CriarCliente(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CriarFicha(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f *FichaNegociacao) error {
			f.ID = fichaID
			return nil
		})

	notif := novoNotificador()
	notif.liberar = make(chan struct{})
	h := NewHandler(s, notif, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	body := `{"dadosCliente":{"nome":"João","cpf":"123"},"nomeConsultor":"Carlos"}`
	req := httptest.NewRequest(http.MethodPost, "/fichas", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()

	respondeu := make(chan struct{})
	go func() {
		h.Criar(rec, req)
		close(respondeu)
	}()
	select {
	case <-respondeu:
	case <-time.After(2 * time.Second):
		close(notif.liberar)
		t.Fatal("a resposta esperou o aviso")
	}
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, notif.recebidos())

	cancel()
	close(notif.liberar)
	assert.Equal(t, fichaID, notif.esperar(t))

	notif.mu.Lock()
	defer notif.mu.Unlock()
	require.Len(t, notif.ctxs, 1)
	assert.NoError(t, notif.ctxs[0].Err())
}

func TestHTTP_CriarInvalido(t *testing.T) {
	a := novoAmbiente(t)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/fichas", `{`, false).Code)
	assert.Equal(t, http.StatusBadRequest,
		a.do(http.MethodPost, "/fichas", `{"dadosCliente":{"nome":"João"}}`, false).Code)
	assert.Empty(t, a.notif.recebidos())
}

func TestHTTP_CriarFalhaGravacao(t *testing.T) {
	a := novoAmbiente(t)
	a.repo.EXPECT().CriarCliente(gomock.Any(), gomock.Any()).Return(nil)
	a.repo.EXPECT().CriarFicha(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	rec := a.do(http.MethodPost, "/fichas", `{"dadosCliente":{"nome":"João","cpf":"123"}}`, false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), EtapaFicha)
	assert.Empty(t, a.notif.recebidos())
}

func TestHTTP_RotasProtegidas(t *testing.T) {
	a := novoAmbiente(t)
	id := uuid.New().String()

	for _, rota := range []struct{ method, path string }{
		{http.MethodGet, "/fichas"},
		{http.MethodGet, "/fichas/estatisticas"},
		{http.MethodGet, "/fichas/" + id},
		{http.MethodPatch, "/fichas/" + id + "/status"},
		{http.MethodPost, "/fichas/" + id + "/pegar"},
		{http.MethodPost, "/fichas/" + id + "/arquivar"},
	} {
		t.Run(rota.method+" "+rota.path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, a.do(rota.method, rota.path, "", false).Code)
		})
	}
}

func TestHTTP_ListarEBuscar(t *testing.T) {
	a := novoAmbiente(t)
	row := montar(clienteCompleto(), negociacaoCompleta(), "Carlos", agoraFixo)
	a.repo.EXPECT().ListarCompletas(gomock.Any()).Return([]FichaNegociacao{row}, nil)
	a.repo.EXPECT().BuscarCompleta(gomock.Any(), row.ID).Return(&row, nil)
	ausente := uuid.New()
	a.repo.EXPECT().BuscarCompleta(gomock.Any(), ausente).Return(nil, ErrNaoEncontrada)

	rec := a.do(http.MethodGet, "/fichas", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []FichaCompleta
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, row.ID, list[0].ID)

	rec = a.do(http.MethodGet, "/fichas/"+row.ID.String(), "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var f FichaCompleta
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&f))
	assert.Equal(t, "João da Silva", f.DadosCliente.Nome)
	assert.Equal(t, agoraFixo.UnixMilli(), f.Timestamp)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/fichas/"+ausente.String(), "", true).Code)
}

func TestHTTP_ListarErro(t *testing.T) {
	a := novoAmbiente(t)
	a.repo.EXPECT().ListarCompletas(gomock.Any()).Return(nil, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, a.do(http.MethodGet, "/fichas", "", true).Code)
}

func TestHTTP_Estatisticas(t *testing.T) {
	a := novoAmbiente(t)
	a.repo.EXPECT().ListarResumo(gomock.Any()).Return(nil, errors.New("boom"))

	rec := a.do(http.MethodGet, "/fichas/estatisticas", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total":0,"pendentes":0,"visualizadas":0,"impressas":0,"emAndamento":0,"concluidas":0,"arquivadas":0,"ultimaFicha":null}`,
		rec.Body.String())
}

func TestHTTP_Pegar(t *testing.T) {
	a := novoAmbiente(t)
	livre, ocupada := uuid.New(), uuid.New()
	a.repo.EXPECT().BuscarSituacao(gomock.Any(), livre).Return(&SituacaoFicha{Status: StatusPendente}, nil)
	a.repo.EXPECT().AtualizarCampos(gomock.Any(), livre, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, campos map[string]any) error {
			assert.Equal(t, "Ana", campos["admin_responsavel"])
			return nil
		})
	a.repo.EXPECT().BuscarSituacao(gomock.Any(), ocupada).
		Return(&SituacaoFicha{Status: StatusEmAndamento, AdminResponsavel: strPtr("Bruno")}, nil)

	rec := a.do(http.MethodPost, "/fichas/"+livre.String()+"/pegar", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Ficha atribuída"}`, rec.Body.String())

	assert.Equal(t, http.StatusConflict, a.do(http.MethodPost, "/fichas/"+ocupada.String()+"/pegar", "", true).Code)
}

func TestHTTP_AtualizarStatus(t *testing.T) {
	a := novoAmbiente(t)
	id := uuid.New()
	a.repo.EXPECT().AtualizarCampos(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, campos map[string]any) error {
			assert.Equal(t, "impressa", campos["status"])
			return nil
		})

	path := "/fichas/" + id.String() + "/status"
	assert.Equal(t, http.StatusOK, a.do(http.MethodPatch, path, `{"status":"impressa"}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPatch, path, `{"status":"printed"}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPatch, path, `{`, true).Code)
}

func TestHTTP_ArquivarDesarquivar(t *testing.T) {
	a := novoAmbiente(t)
	id := uuid.New()
	gomock.InOrder(
		a.repo.EXPECT().AtualizarCampos(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, campos map[string]any) error {
				assert.Equal(t, "arquivada", campos["status"])
				return nil
			}),
		a.repo.EXPECT().AtualizarCampos(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, campos map[string]any) error {
				assert.Equal(t, "concluida", campos["status"])
				return errors.New("boom")
			}),
	)

	assert.Equal(t, http.StatusOK, a.do(http.MethodPost, "/fichas/"+id.String()+"/arquivar", "", true).Code)
	assert.Equal(t, http.StatusConflict, a.do(http.MethodPost, "/fichas/"+id.String()+"/desarquivar", "", true).Code)
}

func TestHTTP_EncerrarELiberar(t *testing.T) {
	a := novoAmbiente(t)
	id := uuid.New()
	a.repo.EXPECT().BuscarSituacao(gomock.Any(), id).
		Return(&SituacaoFicha{Status: StatusEmAndamento, AdminResponsavel: strPtr("Ana")}, nil).Times(2)
	a.repo.EXPECT().AtualizarCampos(gomock.Any(), id, gomock.Any()).Return(nil).Times(2)

	assert.Equal(t, http.StatusOK, a.do(http.MethodPost, "/fichas/"+id.String()+"/encerrar", "", true).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodPost, "/fichas/"+id.String()+"/liberar", "", true).Code)
}
