package dictation

import (
	"regexp"
	"strings"
)

var commentLabel = regexp.MustCompile(`\bcomentarios?\b`)

// detectComment returns the original text following the first comment label.
func detectComment(f folded) string {
	loc := commentLabel.FindStringIndex(f.text)
	if loc == nil {
		return ""
	}
	rest := f.original[f.originalOffset(loc[1]):]
	return strings.TrimSpace(strings.TrimLeft(rest, " \t\r\n:-—=.,;"))
}
