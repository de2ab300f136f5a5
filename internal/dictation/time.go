package dictation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	timePattern = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?(?:\s*(a\.?\s?m\.?|p\.?\s?m\.?|de\s+la\s+(?:manana|tarde|noche)))?`)
	bareMarker  = regexp.MustCompile(`\b(?:a\.?\s?m|p\.?\s?m)\b\.?`)
)

// FallbackTime is used when only a bare "am"/"pm" was dictated.
var FallbackTime = TimeOfDay{Hour: 10, Minute: 30}

// TimeOfDay is a wall-clock time without date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimeOfDay reads a 24-hour "HH:MM" value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// detectTime reads the first hour pattern in folded text. A number with no
// meridian is taken as a 24-hour clock reading; an out-of-range first match
// means no time. The 10:30 fallback applies only to a bare "am"/"pm" when no
// hour pattern appears anywhere.
func detectTime(text string) (TimeOfDay, bool) {
	for _, m := range timePattern.FindAllStringSubmatchIndex(text, -1) {
		hourEnd := m[3]
		if m[4] >= 0 {
			hourEnd = m[5]
		}
		meridian := ""
		if m[6] >= 0 && !wordCharAt(text, m[1]) {
			meridian = text[m[6]:m[7]]
		}
		// Part of a longer number or word, like the "20" in "2000".
		if meridian == "" && wordCharAt(text, hourEnd) {
			continue
		}

		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute := 0
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(text[m[4]:m[5]])
		}
		return resolveTime(hour, minute, meridian)
	}

	for _, loc := range bareMarker.FindAllStringIndex(text, -1) {
		before := strings.TrimRight(text[:loc[0]], " \t")
		if before != "" && unicode.IsDigit(rune(before[len(before)-1])) {
			continue
		}
		return FallbackTime, true
	}
	return TimeOfDay{}, false
}

func resolveTime(hour, minute int, meridian string) (TimeOfDay, bool) {
	minute = min(max(minute, 0), 59)

	switch {
	case meridian == "":
		if hour > 23 {
			return TimeOfDay{}, false
		}
	case strings.HasPrefix(meridian, "p") || strings.HasSuffix(meridian, "tarde") || strings.HasSuffix(meridian, "noche"):
		if hour%12 == 0 {
			hour = 12
		} else {
			hour = hour%12 + 12
		}
	default:
		hour %= 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

func wordCharAt(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	c := rune(text[i])
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c >= 0x80
}
