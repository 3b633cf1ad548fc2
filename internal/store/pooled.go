package store

import "context"

// Pooled direciona leituras para o pool de leitura e escritas para o pool
// de escrita de um DualPool, implementando PostStore e UserStore.
type Pooled struct {
	read  *Queries
	write *Queries
}

func (p *DualPool) Store() *Pooled {
	return &Pooled{read: p.Queries(), write: p.QueriesWrite()}
}

func (p *Pooled) FindPostByID(ctx context.Context, id string) (Post, error) {
	return p.read.FindPostByID(ctx, id)
}

func (p *Pooled) ReplacePostFields(ctx context.Context, id string, params ReplaceFieldsParams) (Post, error) {
	return p.write.ReplacePostFields(ctx, id, params)
}

func (p *Pooled) CreatePost(ctx context.Context, params CreatePostParams) (Post, error) {
	return p.write.CreatePost(ctx, params)
}

func (p *Pooled) ListPostsPaginated(ctx context.Context, paging PagingParams) ([]Post, error) {
	return p.read.ListPostsPaginated(ctx, paging)
}

func (p *Pooled) CountPosts(ctx context.Context) (int64, error) {
	return p.read.CountPosts(ctx)
}

func (p *Pooled) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	return p.write.CreateUser(ctx, params)
}

func (p *Pooled) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return p.read.GetUserByEmail(ctx, email)
}

func (p *Pooled) GetUserByID(ctx context.Context, id string) (User, error) {
	return p.read.GetUserByID(ctx, id)
}
