package dictation

import (
	"regexp"
	"sort"
	"strings"
)

const (
	labelSeparators = `[\s:\-—=.,;]`

	digitValue = `\d[\d.,\s]*(?:\s*(?:k|mil|millones|millon)\b)?`
	rateSuffix = `(?:\s*%)?`
)

// Words allowed between a label and its value: "monto pp es de 2000".
var connectorWords = []string{
	"aproximadamente", "aprox", "igual", "seria", "sera", "son", "era",
	"del", "de", "es", "al", "a", "por", "en",
}

var articleWords = []string{"un", "una", "uno"}

// Skipped when looking at the word before or after a label.
var qualifierFillers = map[string]bool{
	"de": true, "del": true, "la": true, "el": true, "los": true, "las": true, "por": true,
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}%]+`)

// labelTier is one precedence level of labels for a field. accept, when set,
// vets each label occurrence by the words around it in the folded text.
type labelTier struct {
	pattern *regexp.Regexp
	accept  func(text string, start, end int) bool
}

// labeledField extracts the value following any of its labels. Tiers are
// tried in order; inside a tier the earliest accepted occurrence wins.
type labeledField struct {
	rate  bool
	tiers []labelTier
}

type tierSpec struct {
	labels []string
	accept func(text string, start, end int) bool
}

func newLabeledField(rate bool, specs ...tierSpec) labeledField {
	f := labeledField{rate: rate}
	for _, spec := range specs {
		f.tiers = append(f.tiers, labelTier{
			pattern: compileLabelPattern(spec.labels, rate),
			accept:  spec.accept,
		})
	}
	return f
}

func compileLabelPattern(labels []string, rate bool) *regexp.Regexp {
	sorted := append([]string(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	alts := make([]string, 0, len(sorted))
	for _, label := range sorted {
		words := strings.Fields(label)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}

	numberWord := `(?:` + numberWordAlternation() + `)\b`
	nextWord := `[\s,]+(?:(?:y|con|coma|punto)\s+)?` + numberWord
	// "un"/"una"/"uno" is usually an article ("monto de un prestamo") and only
	// counts as a value when more numerals follow: "un millon", "una mil".
	article := `(?:` + strings.Join(articleWords, "|") + `)\b` + nextWord
	standalone := `(?:` + numberWordAlternation(articleWords...) + `)\b`
	wordsValue := `(?:` + article + `|` + standalone + `)(?:` + nextWord + `)*`
	connectors := `(?:(?:` + strings.Join(connectorWords, "|") + `)\b` + labelSeparators + `*)*`

	var b strings.Builder
	b.WriteString(`\b(` + strings.Join(alts, "|") + `)\b`)
	b.WriteString(labelSeparators + `*`)
	b.WriteString(connectors)
	if rate {
		b.WriteString(`(` + digitValue + rateSuffix + `|` + wordsValue + `(?:\s*%|\s+por\s*ciento|\s+porcentaje)?)`)
	} else {
		b.WriteString(`(?:(?:s\s*/\s*\.?|us\$|\$|usd|pen)\s*)?`)
		b.WriteString(`(` + digitValue + `|` + wordsValue + `)`)
	}
	return regexp.MustCompile(b.String())
}

func (f labeledField) extract(text string) string {
	for _, tier := range f.tiers {
		for _, m := range tier.pattern.FindAllStringSubmatchIndex(text, -1) {
			if tier.accept != nil && !tier.accept(text, m[2], m[3]) {
				continue
			}
			raw := strings.TrimRight(text[m[4]:m[5]], " \t\r\n.,;")
			if raw == "" {
				continue
			}
			if f.rate {
				return NormalizeRate(raw)
			}
			return NormalizeAmount(raw)
		}
	}
	return ""
}

// notFollowedBy rejects a label whose next meaningful word is one of words:
// a bare "monto" directly followed by "cd" belongs to the debt purchase.
func notFollowedBy(words ...string) func(string, int, int) bool {
	set := toSet(words)
	return func(text string, _, end int) bool {
		for _, w := range wordPattern.FindAllString(text[end:], 8) {
			if qualifierFillers[w] {
				continue
			}
			return !set[w]
		}
		return true
	}
}

// notPrecededBy rejects a label whose previous meaningful word is one of
// words: the "deuda" in "compra de deuda" is not the outstanding debt.
func notPrecededBy(words ...string) func(string, int, int) bool {
	set := toSet(words)
	return func(text string, start, _ int) bool {
		before := wordPattern.FindAllString(text[:start], -1)
		for i := len(before) - 1; i >= 0; i-- {
			if qualifierFillers[before[i]] {
				continue
			}
			return !set[before[i]]
		}
		return true
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var (
	personalLoanAmountField = newLabeledField(false,
		tierSpec{labels: []string{
			"monto pp", "monto de pp", "monto del pp",
			"monto prestamo personal", "monto de prestamo personal", "monto del prestamo personal",
		}},
		tierSpec{labels: []string{"monto"}, accept: notFollowedBy("compra", "cd", "traslado")},
	)

	personalLoanRateField = newLabeledField(true,
		tierSpec{labels: []string{
			"tasa pp", "tasa de pp", "tasa del pp",
			"tasa prestamo personal", "tasa de prestamo personal", "tasa del prestamo personal",
		}},
		tierSpec{labels: []string{"tasa de interes", "tasa interes", "tasa"}, accept: notFollowedBy("compra", "cd", "traslado")},
	)

	debtField = newLabeledField(false,
		tierSpec{
			labels: []string{"deuda total", "deuda pendiente", "deuda", "saldo pendiente", "saldo deudor", "saldo"},
			accept: notPrecededBy("compra", "traslado"),
		},
	)

	debtPurchaseAmountField = newLabeledField(false,
		tierSpec{labels: []string{
			"monto cd", "monto de cd", "monto del cd",
			"monto compra de deuda", "monto de compra de deuda", "monto de la compra de deuda",
			"monto compra", "monto de compra", "monto de la compra",
			"monto traslado", "monto de traslado", "monto del traslado",
			"monto traslado de deuda", "monto de traslado de deuda", "monto del traslado de deuda",
		}},
		tierSpec{labels: []string{"compra de deuda", "compra", "traslado"}, accept: notPrecededBy("tasa")},
	)

	debtPurchaseRateField = newLabeledField(true,
		tierSpec{labels: []string{
			"tasa cd", "tasa de cd", "tasa del cd",
			"tasa compra de deuda", "tasa de compra de deuda", "tasa de la compra de deuda",
			"tasa compra", "tasa de compra", "tasa de la compra",
			"tasa traslado", "tasa de traslado", "tasa del traslado",
			"tasa traslado de deuda", "tasa de traslado de deuda",
		}},
	)
)
