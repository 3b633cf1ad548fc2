package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PauloHFS/prosa/internal/logging"
	"github.com/PauloHFS/prosa/internal/posts"
	"github.com/PauloHFS/prosa/internal/store"
	"github.com/PauloHFS/prosa/internal/validator"
)

// respondResult converte o desfecho do serviço em status HTTP. Esse mapa
// mora só aqui: o serviço não conhece HTTP.
// Decisão registrada: Forbidden e NotFound continuam distinguíveis (403 vs
// 404), espelhando o comportamento observável original.
func respondResult(w http.ResponseWriter, res posts.Result, onOK func()) error {
	switch res.Outcome {
	case posts.OutcomeUnauthenticated:
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
	case posts.OutcomeNotFound:
		writeMessage(w, http.StatusNotFound, "Post not found")
	case posts.OutcomeForbidden:
		writeMessage(w, http.StatusForbidden, "Access denied")
	case posts.OutcomeInternal:
		return res.Err
	case posts.OutcomeOK:
		onOK()
	}
	return nil
}

func handleGetPost(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	res := deps.Posts.Get(r.Context(), id)
	return respondResult(w, res, func() {
		writeJSON(w, http.StatusOK, map[string]postJSON{"post": toPostJSON(*res.Post)})
	})
}

func handleUpdatePost(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	logging.AddToEvent(r.Context(),
		slog.String("operation", "update_post"),
		slog.String("post_id", id),
	)

	var req validator.UpdatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return nil
	}

	if validation := validator.ValidatePostPayload(req); !validation.Valid {
		writeJSON(w, http.StatusBadRequest, validation)
		return nil
	}

	res := deps.Posts.Update(r.Context(), id, posts.UpdateInput{
		NewTitle:   req.NewTitle,
		NewContent: req.NewContent,
	})

	logging.AddToEvent(r.Context(), slog.String("outcome", res.Outcome.String()))

	return respondResult(w, res, func() {
		writeMessage(w, http.StatusOK, "Post updated")
	})
}

func handleCreatePost(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	logging.AddToEvent(r.Context(), slog.String("operation", "create_post"))

	var req validator.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return nil
	}

	if validation := validator.ValidatePostPayload(req); !validation.Valid {
		writeJSON(w, http.StatusBadRequest, validation)
		return nil
	}

	res := deps.Posts.Create(r.Context(), posts.CreateInput{
		Title:   req.Title,
		Content: req.Content,
	})

	logging.AddToEvent(r.Context(), slog.String("outcome", res.Outcome.String()))

	return respondResult(w, res, func() {
		writeJSON(w, http.StatusCreated, map[string]postJSON{"post": toPostJSON(*res.Post)})
	})
}

func handleListPosts(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	// Valores fora de faixa caem nos defaults do store.
	result, err := deps.Posts.List(r.Context(), store.PagingParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	items := make([]postJSON, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toPostJSON(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts":      items,
		"totalItems": result.TotalItems,
		"page":       result.CurrentPage,
		"perPage":    result.PerPage,
		"totalPages": result.TotalPages(),
	})
	return nil
}
