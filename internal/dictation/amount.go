package dictation

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Stripped before parsing an amount. Longer tokens first: "soles" must go
// before "sol".
var currencyTokens = []string{"s/.", "s/", "soles", "sol", "pen", "dolares", "usd", "us$", "$"}

var percentTokens = []string{"porcentaje", "porciento", "por ciento", "%"}

var (
	minRate = decimal.Zero
	maxRate = decimal.NewFromInt(200)
	million = decimal.NewFromInt(1_000_000)
)

// NormalizeAmount turns a dictated amount into a plain decimal string:
// "S/ 5k" -> "5000", "2.5 mil" -> "2500", "dos mil" -> "2000".
// Input that cannot be read as a number is returned trimmed, unchanged.
func NormalizeAmount(raw string) string {
	trimmed := strings.TrimSpace(raw)
	text := Normalize(trimmed)
	for _, tok := range currencyTokens {
		text = strings.ReplaceAll(text, tok, "")
	}

	value, ok := parseDecimal(text)
	if !ok {
		value, ok = ParseNumberPhrase(text)
	}
	if !ok {
		return trimmed
	}
	return formatDecimal(value)
}

// NormalizeRate turns a dictated rate into a plain decimal string clamped
// to [0, 200]. A "%" is kept only when the input carried one.
func NormalizeRate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	text := Normalize(trimmed)
	percent := strings.Contains(text, "%")
	for _, tok := range percentTokens {
		text = strings.ReplaceAll(text, tok, "")
	}

	value, ok := parseDecimal(text)
	if !ok {
		value, ok = ParseNumberPhrase(text)
	}
	if !ok {
		return trimmed
	}

	out := formatDecimal(clampRate(value))
	if percent {
		out += "%"
	}
	return out
}

func clampRate(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(minRate) {
		return minRate
	}
	if v.GreaterThan(maxRate) {
		return maxRate
	}
	return v
}

// parseDecimal reads a digit-based amount with an optional thousand ("k",
// "mil") or million multiplier.
func parseDecimal(s string) (decimal.Decimal, bool) {
	multiplier := decimal.NewFromInt(1)
	switch {
	case strings.Contains(s, "millon"):
		multiplier = million
		s = strings.NewReplacer("millones", "", "millon", "").Replace(s)
	case strings.Contains(s, "k") || strings.Contains(s, "mil"):
		multiplier = thousand
		s = strings.NewReplacer("k", "", "mil", "").Replace(s)
	}

	d, ok := parseDigits(s)
	if !ok {
		return decimal.Zero, false
	}
	return d.Mul(multiplier), true
}

// parseDigits parses digits grouped with spaces, commas or periods. A single
// separator followed by at most three digits is the decimal point; anything
// else is thousands grouping.
func parseDigits(s string) (decimal.Decimal, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.Trim(s, ".,")
	if s == "" {
		return decimal.Zero, false
	}

	if strings.Count(s, ".")+strings.Count(s, ",") == 1 {
		idx := strings.IndexAny(s, ".,")
		if len(s)-idx-1 <= 3 {
			s = s[:idx] + "." + s[idx+1:]
		} else {
			s = s[:idx] + s[idx+1:]
		}
	} else {
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return decimal.Zero, false
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func formatDecimal(d decimal.Decimal) string {
	return d.String()
}
