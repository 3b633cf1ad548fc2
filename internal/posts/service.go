// Package posts orquestra o fluxo de leitura e atualização de posts:
// sessão -> busca -> política -> derivação de slug -> escrita única.
package posts

import (
	"context"
	"fmt"

	"github.com/PauloHFS/prosa/internal/metrics"
	"github.com/PauloHFS/prosa/internal/policies"
	"github.com/PauloHFS/prosa/internal/session"
	"github.com/PauloHFS/prosa/internal/slug"
	"github.com/PauloHFS/prosa/internal/store"
	"github.com/microcosm-cc/bluemonday"
)

type Service struct {
	store     store.PostStore
	sessions  session.Provider
	sanitizer *bluemonday.Policy

	// deriveSlug é injetável para testes; default slug.Derive.
	deriveSlug func(string) string
}

func NewService(st store.PostStore, sessions session.Provider) *Service {
	return &Service{
		store:      st,
		sessions:   sessions,
		sanitizer:  bluemonday.UGCPolicy(),
		deriveSlug: slug.Derive,
	}
}

// WithSlugDeriver troca o derivador de slug. Usado em testes.
func (s *Service) WithSlugDeriver(fn func(string) string) *Service {
	s.deriveSlug = fn
	return s
}

type UpdateInput struct {
	NewTitle   string
	NewContent string
}

type CreateInput struct {
	Title   string
	Content string
}

// Get é o caminho público de leitura: sem autenticação, por decisão de
// produto.
func (s *Service) Get(ctx context.Context, postID string) Result {
	post, err := s.store.FindPostByID(ctx, postID)
	if err == store.ErrNotFound {
		return fail(OutcomeNotFound)
	}
	if err != nil {
		return internalErr(fmt.Errorf("find post %s: %w", postID, err))
	}
	return ok(post)
}

// Update executa o fluxo completo de atualização. Fail-fast: a primeira
// checagem que falha encerra a chamada, e nenhuma mutação acontece antes
// de todas as checagens passarem. Exatamente uma leitura e, no caminho
// feliz, exatamente uma escrita; sem retries.
func (s *Service) Update(ctx context.Context, postID string, input UpdateInput) Result {
	result := s.update(ctx, postID, input)
	metrics.PostsUpdated.WithLabelValues(result.Outcome.String()).Inc()
	return result
}

func (s *Service) update(ctx context.Context, postID string, input UpdateInput) Result {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return internalErr(fmt.Errorf("load session: %w", err))
	}
	if sess == nil {
		return fail(OutcomeUnauthenticated)
	}

	post, err := s.store.FindPostByID(ctx, postID)
	if err == store.ErrNotFound {
		return fail(OutcomeNotFound)
	}
	if err != nil {
		return internalErr(fmt.Errorf("find post %s: %w", postID, err))
	}

	if !policies.CanModifyPost(sess, post) {
		metrics.AuthzDenials.WithLabelValues("modify_post", sess.Role.String()).Inc()
		return fail(OutcomeForbidden)
	}

	// Slug sempre re-derivado do título novo; nunca aceito do cliente.
	updated, err := s.store.ReplacePostFields(ctx, postID, store.ReplaceFieldsParams{
		Title:   input.NewTitle,
		Content: s.sanitizer.Sanitize(input.NewContent),
		Slug:    s.deriveSlug(input.NewTitle),
	})
	if err == store.ErrNotFound {
		// O post sumiu entre a leitura e a escrita (deleção concorrente).
		return fail(OutcomeNotFound)
	}
	if err != nil {
		return internalErr(fmt.Errorf("replace post %s: %w", postID, err))
	}

	return ok(updated)
}

// Create registra um post novo com o chamador como autor.
func (s *Service) Create(ctx context.Context, input CreateInput) Result {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return internalErr(fmt.Errorf("load session: %w", err))
	}
	if sess == nil {
		return fail(OutcomeUnauthenticated)
	}
	if sess.Role != session.RoleAdmin && sess.Role != session.RoleAuthor {
		metrics.AuthzDenials.WithLabelValues("create_post", sess.Role.String()).Inc()
		return fail(OutcomeForbidden)
	}

	post, err := s.store.CreatePost(ctx, store.CreatePostParams{
		AuthorID: sess.UserID,
		Title:    input.Title,
		Content:  s.sanitizer.Sanitize(input.Content),
		Slug:     s.deriveSlug(input.Title),
	})
	if err != nil {
		return internalErr(fmt.Errorf("create post: %w", err))
	}
	return ok(post)
}

// List é público e paginado.
func (s *Service) List(ctx context.Context, paging store.PagingParams) (store.PagedResult[store.Post], error) {
	items, err := s.store.ListPostsPaginated(ctx, paging)
	if err != nil {
		return store.PagedResult[store.Post]{}, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.store.CountPosts(ctx)
	if err != nil {
		return store.PagedResult[store.Post]{}, fmt.Errorf("count posts: %w", err)
	}
	return store.PagedResult[store.Post]{
		Items:       items,
		TotalItems:  int(total),
		CurrentPage: max(paging.Page, 1),
		PerPage:     paging.Limit(),
	}, nil
}
