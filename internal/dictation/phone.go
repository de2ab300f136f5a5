package dictation

import (
	"regexp"
	"strings"
)

// Peruvian mobile numbers: a 9 followed by eight more digits, possibly
// grouped with spaces, dots or hyphens by the speech recognizer.
var phonePattern = regexp.MustCompile(`9[\d\s.\-]{8,}`)

var spokenDigitPattern = regexp.MustCompile(`\b(?:cero|uno|una|dos|tres|cuatro|cinco|seis|siete|ocho|nueve)\b`)

// phoneMatch is a detected phone number and its byte range in the folded text.
type phoneMatch struct {
	digits string
	start  int
	end    int
}

func detectPhone(text string) (phoneMatch, bool) {
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		digits := onlyDigits(text[loc[0]:loc[1]])
		if len(digits) == 9 {
			return phoneMatch{digits: digits, start: loc[0], end: loc[1]}, true
		}
	}
	return phoneMatch{}, false
}

// ExtractPhoneDigits returns the 9-digit mobile number spoken in input, or ""
// when none can be found. Numbers dictated digit by digit ("nueve ocho siete
// ...") are accepted as well.
func ExtractPhoneDigits(input string) string {
	text := Normalize(input)
	if m, ok := detectPhone(text); ok {
		return m.digits
	}

	spoken := spokenDigitPattern.ReplaceAllStringFunc(text, func(w string) string {
		return digitWords[w]
	})
	if spoken == text {
		return ""
	}
	if m, ok := detectPhone(strings.TrimSpace(spoken)); ok {
		return m.digits
	}
	return ""
}
