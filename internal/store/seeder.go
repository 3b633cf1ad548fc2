package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/PauloHFS/prosa/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

func Seed(ctx context.Context, dbConn *sql.DB) error {
	queries := New(dbConn)

	// 1. Criar Usuário Admin (admin@admin.com / admin123)
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        "admin@admin.com",
		PasswordHash: string(hash),
		RoleID:       "admin",
	})
	if err != nil {
		// Se já existir, ignoramos
		return nil
	}

	// 2. Criar um post de exemplo
	if _, err := queries.CreatePost(ctx, CreatePostParams{
		AuthorID: admin.ID,
		Title:    "Hello, prosa",
		Content:  "<p>Primeiro post.</p>",
		Slug:     "hello-prosa",
	}); err != nil {
		return fmt.Errorf("failed to seed post: %w", err)
	}

	logging.Get().Info("database seeded successfully",
		slog.String("admin_email", "admin@admin.com"),
		slog.String("default_password", "admin123"),
	)
	return nil
}
