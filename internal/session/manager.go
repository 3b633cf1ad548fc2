package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/PauloHFS/prosa/internal/store"
	"github.com/alexedwards/scs/v2"
)

const userIDKey = "user_id"

// Manager adapta o scs ao contrato Provider: o cookie guarda só o user_id,
// o papel vem do banco a cada requisição (snapshot válido pela duração dela).
type Manager struct {
	SCS   *scs.SessionManager
	Users store.UserStore
}

func NewManager(sm *scs.SessionManager, users store.UserStore) *Manager {
	return &Manager{SCS: sm, Users: users}
}

func (m *Manager) Current(ctx context.Context) (*Session, error) {
	userID := m.SCS.GetString(ctx, userIDKey)
	if userID == "" {
		return nil, nil
	}

	user, err := m.Users.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		// Sessão órfã (usuário removido): trata como não autenticado.
		_ = m.SCS.Destroy(ctx)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return &Session{UserID: user.ID, Role: ParseRole(user.RoleID)}, nil
}

// Login grava o usuário na sessão, renovando o token contra fixation.
func (m *Manager) Login(ctx context.Context, userID string) error {
	if err := m.SCS.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session token: %w", err)
	}
	m.SCS.Put(ctx, userIDKey, userID)
	return nil
}

func (m *Manager) Logout(ctx context.Context) error {
	return m.SCS.Destroy(ctx)
}
