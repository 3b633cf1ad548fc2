package session

import (
	"context"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{"admin", RoleAdmin},
		{"author", RoleAuthor},
		{"user", RoleOther},
		{"editor", RoleOther},
		{"ADMIN", RoleOther}, // sem normalização: o banco guarda minúsculo
		{"", RoleOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseRole(tt.input); got != tt.expected {
				t.Errorf("ParseRole(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	if RoleAdmin.String() != "admin" || RoleAuthor.String() != "author" || RoleOther.String() != "other" {
		t.Error("Role.String deveria espelhar os valores canônicos")
	}
}

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("WithSession", func(t *testing.T) {
		p := Static{Session: &Session{UserID: "u1", Role: RoleAuthor}}
		sess, err := p.Current(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess == nil || sess.UserID != "u1" {
			t.Errorf("expected session for u1, got %+v", sess)
		}
	})

	t.Run("Anonymous", func(t *testing.T) {
		sess, err := Static{}.Current(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess != nil {
			t.Errorf("expected nil session, got %+v", sess)
		}
	})
}
