package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/PauloHFS/prosa/internal/logging"
)

// Recovery transforma panics em 500 com envelope JSON, logando o stack.
// Fica no topo da cadeia para cobrir os demais middlewares também.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logging.Get().Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
