package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics descompone (NFD), elimina marcas combinantes y recompone (NFC):
// "Café" -> "Cafe". Así los nombres con tildes producen slugs ASCII estables.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make deriva el slug de un nombre: minúsculas, tildes plegadas, toda secuencia
// no alfanumérica colapsada a un solo guion y guiones en los extremos recortados.
// Es determinista e idempotente: Make(Make(s)) == Make(s).
func Make(name string) string {
	s, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
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
