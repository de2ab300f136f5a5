package dictation

import (
	"regexp"
	"strings"
	"unicode"
)

var nameKeywordPattern = regexp.MustCompile(`(?i)\b(?:nombre|se\s+llama|cliente)\b[ \t]*[:\-]?[ \t]*(\p{L}+(?:[ \t]+\p{L}+)*)`)

// Words that end a name: field labels and dictation commands.
var nameStopKeywords = toSet([]string{
	"fin", "listo", "terminar", "ok",
	"tasa", "deuda", "monto", "saldo", "comentario", "comentarios",
	"compra", "traslado", "celular", "telefono", "numero", "cel", "movil",
	"nombre", "tiene", "llamar", "llamarlo", "llamarla",
})

var namePrefixWords = toSet([]string{
	"es", "el", "la", "se", "llama", "llamado", "llamada", "nombre", "cliente", "de", "del",
})

var nameTrailingWords = toSet([]string{
	"su", "y", "con", "es", "el", "la", "de", "del", "que", "tiene", "a", "al", "e", "o", "mi", "sus", "las", "los", "le", "para",
})

// Field labels such as "celular" are stop keywords and already end the word
// run; what remains to reject is an "es" left inside the name, which means
// the run spans two phrases ("Juan es Perez").
var invalidNameTokens = toSet([]string{"es"})

const nameEdgePunctuation = " \t.,-—"

// detectName finds the contact name, upper-cased. Explicit keywords are tried
// first; when none yields a usable name, the words right after the phone
// number are used.
func detectName(f folded, phone phoneMatch, hasPhone bool) string {
	for _, m := range nameKeywordPattern.FindAllStringSubmatch(f.original, -1) {
		if name := cleanName(m[1]); name != "" {
			return name
		}
	}
	if !hasPhone {
		return ""
	}
	return cleanName(f.original[f.originalOffset(phone.end):])
}

func cleanName(candidate string) string {
	candidate = strings.TrimLeft(candidate, nameEdgePunctuation+":;\r\n")
	if i := strings.IndexAny(candidate, "\r\n;:"); i >= 0 {
		candidate = candidate[:i]
	}

	var words []string
	for _, field := range strings.Fields(candidate) {
		word := strings.Trim(field, nameEdgePunctuation)
		if word == "" || !isNameWord(word) || nameStopKeywords[Normalize(word)] {
			break
		}
		words = append(words, word)
		if strings.HasSuffix(field, ",") || strings.HasSuffix(field, ".") {
			break
		}
	}

	for len(words) > 0 && namePrefixWords[Normalize(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && nameTrailingWords[Normalize(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}

	for _, w := range words {
		if invalidNameTokens[Normalize(w)] {
			return ""
		}
	}
	return upper(strings.Join(words, " "))
}

func isNameWord(w string) bool {
	for i, r := range w {
		if unicode.IsLetter(r) {
			continue
		}
		if (r == '\'' || r == '-') && i > 0 {
			continue
		}
		return false
	}
	return true
}
