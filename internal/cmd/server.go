package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/justinas/nosurf"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PauloHFS/prosa/internal/config"
	"github.com/PauloHFS/prosa/internal/logging"
	"github.com/PauloHFS/prosa/internal/middleware"
	"github.com/PauloHFS/prosa/internal/posts"
	"github.com/PauloHFS/prosa/internal/session"
	"github.com/PauloHFS/prosa/internal/store"
	"github.com/PauloHFS/prosa/internal/web"
)

func RunServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init()
	logger := logging.Get()

	// 1. DB: pools separados de leitura e escrita, com pragmas aplicados
	pool, err := store.NewDualPool("sqlite3", dsnWithPragmas(cfg.DatabaseURL))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		panic(err)
	}
	defer pool.Close()

	if err := store.RunMigrations(context.Background(), pool.Write); err != nil {
		logger.Error("failed to run migrations", "error", err)
		panic(err)
	}

	st := pool.Store()

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(pool.Write)
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Secure = cfg.Env == "prod"

	sessions := session.NewManager(sessionManager, st)
	postService := posts.NewService(st, sessions)

	mux := http.NewServeMux()
	mux.Handle("GET "+web.Metrics, promhttp.Handler())

	mux.HandleFunc("GET "+web.Health, func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Read.PingContext(r.Context()); err != nil {
			logger.Error("health check failed: db unreachable", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Registrar handlers de negócio
	web.RegisterRoutes(mux, web.HandlerDeps{
		Posts:    postService,
		Sessions: sessions,
		Users:    st,
		Config:   cfg,
	})

	csrfHandler := nosurf.New(middleware.InjectCSRF(mux))
	csrfHandler.SetBaseCookie(http.Cookie{
		HttpOnly: true,
		Path:     "/",
		Secure:   cfg.Env == "prod",
	})

	handler := middleware.Recovery(
		middleware.RateLimit(5, 10)(
			middleware.SecurityHeaders(cfg.Env == "prod")(
				middleware.Logger(
					sessionManager.LoadAndSave(
						csrfHandler,
					),
				),
			),
		),
	)

	// CORS só quando há origens externas configuradas; sem elas a API é
	// same-origin e nenhum header é emitido.
	if len(cfg.CORSOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = cfg.CORSOrigins
		handler = middleware.CORS(corsCfg)(handler)
	}

	compressedHandler := gzhttp.GzipHandler(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: compressedHandler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("server stopping")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited properly")
}
