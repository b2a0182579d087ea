package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	e := NewEmissor("segredo-teste", time.Hour)

	tok, err := e.GerarToken(7, "Ana")
	require.NoError(t, err)

	claims, err := e.ValidarToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "Ana", claims.Nome)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidarToken_Rejeita(t *testing.T) {
	e := NewEmissor("segredo-teste", time.Hour)

	outro, err := NewEmissor("outro-segredo", time.Hour).GerarToken(1, "Ana")
	require.NoError(t, err)

	expirado := NewEmissor("segredo-teste", time.Hour)
	expirado.agora = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	velho, err := expirado.GerarToken(1, "Ana")
	require.NoError(t, err)

	semNome, err := e.GerarToken(1, "")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		AdminID: 1,
		Nome:    "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"segredo diferente": outro,
		"expirado":          velho,
		"sem nome":          semNome,
		"alg none":          none,
		"lixo":              "abc.def.ghi",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.ValidarToken(tok)
			assert.Error(t, err)
		})
	}
}

func TestMiddlewareAutenticacao(t *testing.T) {
	e := NewEmissor("segredo-teste", time.Hour)
	tok, err := e.GerarToken(3, "Bruno")
	require.NoError(t, err)

	var visto string
	h := e.MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = AdminDoContexto(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		method string
		header string
		code   int
		admin  string
	}{
		{"sem header", http.MethodGet, "", http.StatusUnauthorized, ""},
		{"sem bearer", http.MethodGet, tok, http.StatusUnauthorized, ""},
		{"token inválido", http.MethodGet, "Bearer x.y.z", http.StatusUnauthorized, ""},
		{"preflight passa", http.MethodOptions, "", http.StatusNoContent, ""},
		{"ok", http.MethodGet, "Bearer " + tok, http.StatusNoContent, "Bruno"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visto = ""
			req := httptest.NewRequest(tt.method, "/fichas", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.admin, visto)
		})
	}
}
