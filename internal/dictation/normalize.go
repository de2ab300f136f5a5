package dictation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folded is the matching view of a dictation: lower-cased, with diacritics
// removed. origin maps every byte of text back to the byte offset of the
// original rune it came from, so spans found while matching can be cut out of
// the original text with its casing and accents intact.
type folded struct {
	original string
	text     string
	origin   []int
}

func fold(s string) folded {
	lower := cases.Lower(language.Spanish)
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	b.Grow(len(s))
	origin := make([]int, 0, len(s)+1)

	for i, r := range s {
		chunk := lower.String(string(r))
		if out, _, err := transform.String(strip, chunk); err == nil {
			chunk = out
		}
		for j := 0; j < len(chunk); j++ {
			origin = append(origin, i)
		}
		b.WriteString(chunk)
	}
	origin = append(origin, len(s))

	return folded{original: s, text: b.String(), origin: origin}
}

// originalOffset translates a byte offset in the folded text to the matching
// byte offset in the original text.
func (f folded) originalOffset(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(f.origin) {
		return len(f.original)
	}
	return f.origin[i]
}

// Normalize returns the case-folded, accent-free form of s used for matching
// ("Teléfono Ñandú" -> "telefono nandu").
func Normalize(s string) string {
	return fold(s).text
}

func upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
