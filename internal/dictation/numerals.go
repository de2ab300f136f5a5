package dictation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Spanish numeral vocabulary, in folded (accent-free) form.
var (
	digitWords = map[string]string{
		"cero":   "0",
		"uno":    "1",
		"una":    "1",
		"dos":    "2",
		"tres":   "3",
		"cuatro": "4",
		"cinco":  "5",
		"seis":   "6",
		"siete":  "7",
		"ocho":   "8",
		"nueve":  "9",
	}

	smallNumberWords = map[string]int64{
		"cero":         0,
		"un":           1,
		"uno":          1,
		"una":          1,
		"dos":          2,
		"tres":         3,
		"cuatro":       4,
		"cinco":        5,
		"seis":         6,
		"siete":        7,
		"ocho":         8,
		"nueve":        9,
		"diez":         10,
		"once":         11,
		"doce":         12,
		"trece":        13,
		"catorce":      14,
		"quince":       15,
		"dieciseis":    16,
		"diecisiete":   17,
		"dieciocho":    18,
		"diecinueve":   19,
		"veinte":       20,
		"veintiun":     21,
		"veintiuno":    21,
		"veintiuna":    21,
		"veintidos":    22,
		"veintitres":   23,
		"veinticuatro": 24,
		"veinticinco":  25,
		"veintiseis":   26,
		"veintisiete":  27,
		"veintiocho":   28,
		"veintinueve":  29,
	}

	tensNumberWords = map[string]int64{
		"treinta":   30,
		"cuarenta":  40,
		"cincuenta": 50,
		"sesenta":   60,
		"setenta":   70,
		"ochenta":   80,
		"noventa":   90,
	}

	hundredNumberWords = map[string]int64{
		"cien":          100,
		"ciento":        100,
		"doscientos":    200,
		"doscientas":    200,
		"trescientos":   300,
		"trescientas":   300,
		"cuatrocientos": 400,
		"cuatrocientas": 400,
		"quinientos":    500,
		"quinientas":    500,
		"seiscientos":   600,
		"seiscientas":   600,
		"setecientos":   700,
		"setecientas":   700,
		"ochocientos":   800,
		"ochocientas":   800,
		"novecientos":   900,
		"novecientas":   900,
	}

	// Scales that close a group ("dos millones trescientos mil").
	largeScaleWords = map[string]int64{
		"millon":   1_000_000,
		"millones": 1_000_000,
		"billon":   1_000_000_000_000,
		"billones": 1_000_000_000_000,
	}

	numberIgnoredTokens = map[string]bool{"y": true, "con": true, "de": true, "del": true}
)

var thousand = decimal.NewFromInt(1000)

// numberWordAlternation is a regexp alternation of every numeral word except
// the excluded ones, longest first so that "veintiuno" wins over "veinte".
func numberWordAlternation(exclude ...string) string {
	seen := toSet(exclude)
	var words []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	for w := range smallNumberWords {
		add(w)
	}
	for w := range tensNumberWords {
		add(w)
	}
	for w := range hundredNumberWords {
		add(w)
	}
	for w := range largeScaleWords {
		add(w)
	}
	add("mil")

	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return strings.Join(words, "|")
}

// ParseNumberPhrase converts a Spanish numeral phrase into a decimal:
// "dos mil quinientos" -> 2500, "doce coma cinco" -> 12.5,
// "nueve ocho siete" -> 987. Digit tokens may be mixed in ("3 millones").
func ParseNumberPhrase(text string) (decimal.Decimal, bool) {
	phrase := strings.NewReplacer("-", " ", ",", " coma ").Replace(Normalize(text))
	tokens := strings.Fields(phrase)
	if len(tokens) == 0 {
		return decimal.Zero, false
	}

	intTokens, fracTokens := tokens, []string(nil)
	for i, tok := range tokens {
		if tok == "coma" || tok == "punto" {
			intTokens, fracTokens = tokens[:i], tokens[i+1:]
			break
		}
	}

	whole, ok := parseIntegerWords(intTokens)
	if !ok {
		return decimal.Zero, false
	}
	if fracTokens == nil {
		return whole, true
	}

	digits, ok := fractionDigits(fracTokens)
	if !ok {
		return decimal.Zero, false
	}
	frac, err := decimal.NewFromString("0." + digits)
	if err != nil {
		return decimal.Zero, false
	}
	return whole.Add(frac), true
}

func parseIntegerWords(tokens []string) (decimal.Decimal, bool) {
	if seq, ok := sequentialDigits(tokens); ok && len(seq) > 1 {
		d, err := decimal.NewFromString(seq)
		return d, err == nil
	}
	return composeNumber(tokens)
}

// sequentialDigits reads tokens dictated one digit at a time.
func sequentialDigits(tokens []string) (string, bool) {
	var b strings.Builder
	for _, tok := range tokens {
		if numberIgnoredTokens[tok] {
			continue
		}
		d, ok := digitWords[tok]
		if !ok {
			return "", false
		}
		b.WriteString(d)
	}
	return b.String(), b.Len() > 0
}

func composeNumber(tokens []string) (decimal.Decimal, bool) {
	total, current := decimal.Zero, decimal.Zero
	seen := false

	for _, tok := range tokens {
		if numberIgnoredTokens[tok] {
			continue
		}
		if v, ok := smallNumberWords[tok]; ok {
			current = current.Add(decimal.NewFromInt(v))
		} else if v, ok := tensNumberWords[tok]; ok {
			current = current.Add(decimal.NewFromInt(v))
		} else if v, ok := hundredNumberWords[tok]; ok {
			current = current.Add(decimal.NewFromInt(v))
		} else if tok == "mil" || tok == "k" {
			if current.IsZero() {
				current = decimal.NewFromInt(1)
			}
			current = current.Mul(thousand)
		} else if v, ok := largeScaleWords[tok]; ok {
			if current.IsZero() {
				current = decimal.NewFromInt(1)
			}
			total = total.Add(current.Mul(decimal.NewFromInt(v)))
			current = decimal.Zero
		} else if d, ok := parseDigits(tok); ok {
			current = current.Add(d)
		} else {
			return decimal.Zero, false
		}
		seen = true
	}

	if !seen {
		return decimal.Zero, false
	}
	return total.Add(current), true
}

func fractionDigits(tokens []string) (string, bool) {
	if seq, ok := sequentialDigits(tokens); ok {
		return seq, true
	}
	n, ok := composeNumber(tokens)
	if !ok || !n.IsInteger() {
		return "", false
	}
	return n.String(), true
}
