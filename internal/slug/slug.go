// Package slug deriva identificadores legíveis e URL-safe a partir de títulos.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeMarks decompõe (NFD) e descarta os acentos, recompondo em NFC.
var removeMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Derive é uma função pura e total: qualquer texto de entrada é válido,
// inclusive vazio ou só de símbolos (resultado ""). A mesma entrada produz
// sempre a mesma saída. Unicidade global não é responsabilidade daqui.
func Derive(title string) string {
	folded, _, err := transform.String(removeMarks, title)
	if err != nil {
		// Entrada com bytes inválidos ainda precisa produzir algo
		// determinístico; seguimos com o texto original.
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
