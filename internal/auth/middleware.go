package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxAdminID   ctxKey = "adminID"
	CtxAdminNome ctxKey = "adminNome"
)

// MiddlewareAutenticacao exige um Bearer token válido e põe o admin no contexto.
func (e *Emissor) MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxAdminID, claims.AdminID)
		ctx = context.WithValue(ctx, CtxAdminNome, claims.Nome)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminDoContexto devolve o nome do admin autenticado.
func AdminDoContexto(ctx context.Context) (string, bool) {
	nome, ok := ctx.Value(CtxAdminNome).(string)
	return nome, ok && nome != ""
}
