package middleware

import (
	"context"
	"net/http"

	"github.com/PauloHFS/prosa/internal/contextkeys"
	"github.com/PauloHFS/prosa/internal/logging"
	"github.com/PauloHFS/prosa/internal/session"
)

// RequireSession barra chamadores anônimos com 401 e injeta a sessão no
// contexto. API JSON: sem redirect para página de login.
func RequireSession(provider session.Provider, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := provider.Current(r.Context())
		if err != nil {
			logging.Get().Error("failed to resolve session", "error", err)
			http.Error(w, `{"message":"Internal Server Error"}`, http.StatusInternalServerError)
			return
		}
		if sess == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Not authenticated"}`))
			return
		}

		ctx := context.WithValue(r.Context(), contextkeys.SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession recupera a sessão do contexto de forma segura
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(contextkeys.SessionContextKey).(*session.Session)
	return sess, ok && sess != nil
}
