package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound sinaliza que o registro não existe (ou sumiu entre a leitura
// e a escrita, no caso de ReplacePostFields).
var ErrNotFound = errors.New("store: not found")

type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	RoleID       string
	CreatedAt    time.Time
}

// ReplaceFieldsParams carrega os três campos que uma atualização substitui
// de forma atômica. Slug nunca vem do cliente; é derivado do título.
type ReplaceFieldsParams struct {
	Title   string
	Content string
	Slug    string
}

type CreatePostParams struct {
	AuthorID string
	Title    string
	Content  string
	Slug     string
}

// PostStore é a coleção externa de posts, endereçada por id.
type PostStore interface {
	FindPostByID(ctx context.Context, id string) (Post, error)
	ReplacePostFields(ctx context.Context, id string, params ReplaceFieldsParams) (Post, error)
	CreatePost(ctx context.Context, params CreatePostParams) (Post, error)
	ListPostsPaginated(ctx context.Context, paging PagingParams) ([]Post, error)
	CountPosts(ctx context.Context) (int64, error)
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	RoleID       string
}

type UserStore interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
}
