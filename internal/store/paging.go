package store

// Limites de paginação para listagens públicas.
const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

type PagingParams struct {
	Page    int
	PerPage int
}

// normalized aplica os limites: página mínima 1, perPage dentro de
// [1, MaxPerPage] com fallback para o default.
func (p PagingParams) normalized() PagingParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
	return p
}

func (p PagingParams) Offset() int {
	n := p.normalized()
	return (n.Page - 1) * n.PerPage
}

func (p PagingParams) Limit() int {
	return p.normalized().PerPage
}

// PagedResult encapsula os itens e os metadados da página.
type PagedResult[T any] struct {
	Items       []T
	TotalItems  int
	CurrentPage int
	PerPage     int
}

func (p PagedResult[T]) TotalPages() int {
	if p.PerPage == 0 {
		return 0
	}
	return (p.TotalItems + p.PerPage - 1) / p.PerPage
}
