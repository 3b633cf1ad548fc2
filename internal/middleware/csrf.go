package middleware

import (
	"context"
	"net/http"

	"github.com/PauloHFS/prosa/internal/contextkeys"
	"github.com/justinas/nosurf"
)

// InjectCSRF coloca o token no contexto e devolve no header, já que um
// cliente JSON não tem formulário para ler o campo oculto.
func InjectCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := nosurf.Token(r)
		w.Header().Set("X-CSRF-Token", token)
		ctx := context.WithValue(r.Context(), contextkeys.CSRFTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
