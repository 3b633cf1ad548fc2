package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory é um PostStore/UserStore em memória, espelhando a semântica do
// SQLite. Usado em testes de serviço, sem driver.
type Memory struct {
	mu    sync.RWMutex
	posts map[string]Post
	users map[string]User
}

func NewMemory() *Memory {
	return &Memory{
		posts: make(map[string]Post),
		users: make(map[string]User),
	}
}

func (m *Memory) FindPostByID(ctx context.Context, id string) (Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) ReplacePostFields(ctx context.Context, id string, params ReplaceFieldsParams) (Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	p.Title = params.Title
	p.Content = params.Content
	p.Slug = params.Slug
	p.UpdatedAt = time.Now()
	m.posts[id] = p
	return p, nil
}

func (m *Memory) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	p := Post{
		ID:        uuid.New().String(),
		AuthorID:  params.AuthorID,
		Title:     params.Title,
		Content:   params.Content,
		Slug:      params.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *Memory) ListPostsPaginated(ctx context.Context, paging PagingParams) ([]Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]Post, 0, len(m.posts))
	for _, p := range m.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	offset := paging.Offset()
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+paging.Limit(), len(all))
	return all[offset:end], nil
}

func (m *Memory) CountPosts(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.posts)), nil
}

func (m *Memory) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := User{
		ID:           uuid.New().String(),
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		RoleID:       params.RoleID,
		CreatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// SeedPost insere um post com id conhecido; só para testes.
func (m *Memory) SeedPost(p Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.posts[p.ID] = p
}

// DeletePost remove um post; usado em testes para simular a corrida com
// uma deleção concorrente.
func (m *Memory) DeletePost(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
}
