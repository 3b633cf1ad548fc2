package policies

import (
	"github.com/PauloHFS/prosa/internal/session"
	"github.com/PauloHFS/prosa/internal/store"
)

// CanModifyPost implementa a regra de autorização de edição de conteúdo.
// Função pura: sem I/O, sem estado, segura para chamadas concorrentes.
// Precedência, primeira regra que casa vence:
//  1. sem sessão -> nega (o transporte já deveria ter barrado, mas a
//     função se defende sozinha)
//  2. admin -> pode modificar qualquer post
//  3. author dono do post -> pode modificar o próprio
//  4. qualquer outro caso -> nega
func CanModifyPost(sess *session.Session, post store.Post) bool {
	if sess == nil {
		return false
	}
	if sess.Role == session.RoleAdmin {
		return true
	}
	if sess.Role == session.RoleAuthor && sess.UserID == post.AuthorID {
		return true
	}
	return false
}

// CanDeletePost segue a mesma regra de modificação.
func CanDeletePost(sess *session.Session, post store.Post) bool {
	return CanModifyPost(sess, post)
}

// CanViewPost: leitura é pública por decisão de produto.
func CanViewPost(_ *session.Session, _ store.Post) bool {
	return true
}
