package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first that parses wins. Day and month
// accept one or two digits.
var dateLayouts = []string{
	"2006-1-2", // YYYY-MM-DD
	"2/1/2006", // DD/MM/YYYY
	"1/2/2006", // MM/DD/YYYY
	"2-1-2006", // DD-MM-YYYY
	"2006/1/2", // YYYY/MM/DD
}

// fallbackDateLayouts cover the generic date-time shapes.
var fallbackDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"20060102",
	"2006.1.2",
	"2.1.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var (
	clockFieldRe = regexp.MustCompile(`^(\d{1,2}):?(\d{2})(?::?(\d{2}))?\s*([ap]\.?m\.?)?$`)

	fallbackTimeLayouts = []string{
		"15:04:05.999999999Z07:00",
		"15:04:05.999999999",
		"15:04Z07:00",
		time.RFC3339Nano,
		time.Kitchen,
	}
)

// NormalizeDate converts a structured date value to YYYY-MM-DD.
// It returns false for empty, native clock-only, or unparseable values.
func NormalizeDate(v Value) (string, bool) {
	switch v.kind {
	case KindNativeDate:
		return v.t.Format(DateLayout), true
	case KindRaw:
		return normalizeDateString(v.raw)
	default:
		return "", false
	}
}

func normalizeDateString(raw string) (string, bool) {
	datePart := raw
	if i := strings.IndexAny(datePart, "T "); i > 0 && isDigit(datePart[0]) {
		datePart = datePart[:i]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, datePart); err == nil {
			return t.Format(DateLayout), true
		}
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// NormalizeTime converts a structured time value to HH:MM:SS. Sub-second
// precision is dropped and out-of-range components are clamped.
func NormalizeTime(v Value) (string, bool) {
	switch v.kind {
	case KindNativeDate, KindNativeTime:
		return v.t.Format(TimeLayout), true
	case KindRaw:
		return normalizeTimeString(v.raw)
	default:
		return "", false
	}
}

func normalizeTimeString(raw string) (string, bool) {
	lower := strings.ToLower(raw)
	if m := clockFieldRe.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		s := 0
		if m[3] != "" {
			s, _ = strconv.Atoi(m[3])
		}
		if m[4] != "" {
			h = to24Hour(h, m[4])
		}
		return formatClockSeconds(h, mi, s), true
	}

	upper := strings.ToUpper(raw)
	for _, layout := range fallbackTimeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format(TimeLayout), true
		}
	}
	return "", false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
