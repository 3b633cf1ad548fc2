package session

import "context"

// Role é um enum fechado: qualquer valor desconhecido vira RoleOther,
// eliminando bugs de comparação com strings livres.
type Role int

const (
	RoleOther Role = iota
	RoleAuthor
	RoleAdmin
)

func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "author":
		return RoleAuthor
	default:
		return RoleOther
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleAuthor:
		return "author"
	default:
		return "other"
	}
}

// Session representa o chamador autenticado durante uma única requisição.
// Nunca é persistida por este pacote; o scs cuida do ciclo de vida.
type Session struct {
	UserID string
	Role   Role
}

// Provider entrega a sessão corrente da requisição.
// (nil, nil) significa "não autenticado", não é um erro.
type Provider interface {
	Current(ctx context.Context) (*Session, error)
}

// Static é um Provider fixo para testes.
type Static struct {
	Session *Session
	Err     error
}

func (s Static) Current(ctx context.Context) (*Session, error) {
	return s.Session, s.Err
}
