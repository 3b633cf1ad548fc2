package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PauloHFS/prosa/internal/config"
	"github.com/PauloHFS/prosa/internal/logging"
	"github.com/PauloHFS/prosa/internal/middleware"
	"github.com/PauloHFS/prosa/internal/posts"
	"github.com/PauloHFS/prosa/internal/session"
	"github.com/PauloHFS/prosa/internal/store"
	"github.com/PauloHFS/prosa/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

type HandlerDeps struct {
	Posts    *posts.Service
	Sessions *session.Manager
	Users    store.UserStore
	Config   *config.Config
}

// AppHandler é um tipo customizado que permite retornar erros dos handlers
type AppHandler func(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error

// Handle envolve nosso AppHandler para conformidade com http.HandlerFunc
func Handle(deps HandlerDeps, h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(deps, w, r); err != nil {
			logging.Get().Error("request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)

			writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func RegisterRoutes(mux *http.ServeMux, deps HandlerDeps) {
	// Auth Handlers
	mux.HandleFunc("POST "+Register, Handle(deps, handleRegister))
	mux.HandleFunc("POST "+Login, Handle(deps, handleLogin))
	mux.HandleFunc("POST "+Logout, Handle(deps, handleLogout))
	mux.Handle("GET "+Me, middleware.RequireSession(deps.Sessions, Handle(deps, handleMe)))

	// Posts: leitura pública, escrita autenticada (a autenticação é checada
	// dentro do serviço, que devolve o desfecho explícito).
	mux.HandleFunc("GET "+Posts, Handle(deps, handleListPosts))
	mux.HandleFunc("GET "+PostByID, Handle(deps, handleGetPost))
	mux.HandleFunc("POST "+Posts, Handle(deps, handleCreatePost))
	mux.HandleFunc("PUT "+PostByID, Handle(deps, handleUpdatePost))
}

// --- Handler Implementations ---

func handleRegister(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return nil
	}

	emailDomain := ""
	if idx := strings.Index(req.Email, "@"); idx > 0 {
		emailDomain = req.Email[idx+1:]
	}

	logging.AddToEvent(r.Context(),
		slog.String("operation", "register"),
		slog.String("email_domain", emailDomain),
	)

	validation := validator.ValidateRegistration(req.Email, req.Password)
	if !validation.Valid {
		writeJSON(w, http.StatusBadRequest, validation)
		return nil
	}

	if _, err := deps.Users.GetUserByEmail(r.Context(), req.Email); err == nil {
		logging.AddToEvent(r.Context(),
			slog.String("outcome", "error"),
			slog.String("error_reason", "email_already_exists"),
		)
		writeMessage(w, http.StatusConflict, "E-mail already in use")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := deps.Users.CreateUser(r.Context(), store.CreateUserParams{
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       "author",
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logging.AddToEvent(r.Context(),
		slog.String("outcome", "success"),
		slog.String("created_user_id", user.ID),
	)

	writeMessage(w, http.StatusCreated, "Account created")
	return nil
}

func handleLogin(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return nil
	}

	emailDomain := ""
	if idx := strings.Index(req.Email, "@"); idx > 0 {
		emailDomain = req.Email[idx+1:]
	}

	logging.AddToEvent(r.Context(),
		slog.String("operation", "login"),
		slog.String("email_domain", emailDomain),
	)

	if req.Email == "" || req.Password == "" {
		logging.AddToEvent(r.Context(),
			slog.String("outcome", "error"),
			slog.String("error_reason", "missing_credentials"),
		)
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return nil
	}

	user, err := deps.Users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logging.AddToEvent(r.Context(),
			slog.String("outcome", "error"),
			slog.String("error_reason", "user_not_found"),
		)
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logging.AddToEvent(r.Context(),
			slog.String("outcome", "error"),
			slog.String("error_reason", "invalid_password"),
			slog.String("user_id", user.ID),
		)
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return nil
	}

	if err := deps.Sessions.Login(r.Context(), user.ID); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	logging.AddToEvent(r.Context(),
		slog.String("outcome", "success"),
		slog.String("user_id", user.ID),
		slog.String("user_role", user.RoleID),
	)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Logged in",
		"userId":  user.ID,
		"role":    session.ParseRole(user.RoleID).String(),
	})
	return nil
}

func handleLogout(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	if err := deps.Sessions.Logout(r.Context()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func handleMe(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return nil
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"userId": sess.UserID,
		"role":   sess.Role.String(),
	})
	return nil
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
