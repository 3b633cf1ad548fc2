package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Queries implementa PostStore e UserStore sobre um *sql.DB (SQLite).
type Queries struct {
	db DBTX
}

// DBTX permite usar tanto *sql.DB quanto *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const postColumns = "id, author_id, title, content, slug, created_at, updated_at"

func scanPost(row *sql.Row) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("failed to scan post: %w", err)
	}
	return p, nil
}

func (q *Queries) FindPostByID(ctx context.Context, id string) (Post, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	return scanPost(row)
}

// ReplacePostFields substitui título, conteúdo e slug em uma única escrita.
// Retorna ErrNotFound se o post sumiu entre a leitura e a escrita.
func (q *Queries) ReplacePostFields(ctx context.Context, id string, params ReplaceFieldsParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, content = ?, slug = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING `+postColumns,
		params.Title, params.Content, params.Slug, id)
	return scanPost(row)
}

func (q *Queries) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	id := uuid.New().String()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, author_id, title, content, slug)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+postColumns,
		id, params.AuthorID, params.Title, params.Content, params.Slug)
	return scanPost(row)
}

func (q *Queries) ListPostsPaginated(ctx context.Context, paging PagingParams) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts ORDER BY created_at DESC, id LIMIT ? OFFSET ?",
		paging.Limit(), paging.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Slug, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func (q *Queries) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	id := uuid.New().String()
	var u User
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_hash, role_id)
		VALUES (?, ?, ?, ?)
		RETURNING id, email, password_hash, role_id, created_at`,
		id, params.Email, params.PasswordHash, params.RoleID).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return q.scanUser(ctx, "SELECT id, email, password_hash, role_id, created_at FROM users WHERE email = ?", email)
}

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	return q.scanUser(ctx, "SELECT id, email, password_hash, role_id, created_at FROM users WHERE id = ?", id)
}

func (q *Queries) scanUser(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := q.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}
