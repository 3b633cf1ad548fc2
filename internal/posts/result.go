package posts

import "github.com/PauloHFS/prosa/internal/store"

// Outcome é o desfecho explícito de uma operação. Os quatro desfechos de
// erro são mutuamente exclusivos e exaustivos; o transporte converte cada
// um em status HTTP, nunca o contrário.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeUnauthenticated
	OutcomeNotFound
	OutcomeForbidden
	OutcomeInternal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeForbidden:
		return "forbidden"
	default:
		return "internal_error"
	}
}

// Result carrega o desfecho e, quando houver, o post envolvido. Err só é
// preenchido em OutcomeInternal e fica restrito ao log, nunca vaza para
// o cliente.
type Result struct {
	Outcome Outcome
	Post    *store.Post
	Err     error
}

func ok(p store.Post) Result {
	return Result{Outcome: OutcomeOK, Post: &p}
}

func fail(o Outcome) Result {
	return Result{Outcome: o}
}

func internalErr(err error) Result {
	return Result{Outcome: OutcomeInternal, Err: err}
}
