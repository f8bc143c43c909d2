package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// The "\dt" alternative lets the hour follow an ISO "2025-10-17T" prefix.
	clock24Re      = regexp.MustCompile(`(?:\b|\dt)(?:at\s+)?([01]?\d|2[0-3]):([0-5]\d)\b`)
	meridiemTailRe = regexp.MustCompile(`^(?::\d{2})?\s*[ap]\.?m\b`)
	clock12Re      = regexp.MustCompile(`\b(?:at\s+)?(\d{1,2})[:.](\d{2})(?:[:.](\d{2}))?\s*([ap])\.?m\b`)
	compactClockRe = regexp.MustCompile(`\b(\d{1,4})\s?([ap])\.?m\b`)
)

// namedPeriods are checked in order once no explicit clock time is found.
var namedPeriods = []struct {
	re    *regexp.Regexp
	clock string
}{
	{regexp.MustCompile(`\b(?:noon|midday)\b`), "12:00"},
	{regexp.MustCompile(`\bmidnight\b`), "00:00"},
	{regexp.MustCompile(`\bmorning\b`), "09:00"},
	{regexp.MustCompile(`\bafternoon\b`), "15:00"},
	{regexp.MustCompile(`\bevening\b`), "19:00"},
	{regexp.MustCompile(`\b(?:tonight|night)\b`), "21:00"},
}

// InferTime scans free text for a time cue and returns it as HH:MM.
// An explicit clock time always wins over a named period.
func InferTime(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, idx := range clock24Re.FindAllStringSubmatchIndex(lower, -1) {
		// "6:30 pm" belongs to the 12-hour rule.
		if meridiemTailRe.MatchString(lower[idx[1]:]) {
			continue
		}
		h, _ := strconv.Atoi(lower[idx[2]:idx[3]])
		m, _ := strconv.Atoi(lower[idx[4]:idx[5]])
		return formatClock(h, m), true
	}

	for _, idx := range clock12Re.FindAllStringSubmatchIndex(lower, -1) {
		if glued(lower, idx[0]) {
			continue
		}
		h, _ := strconv.Atoi(lower[idx[2]:idx[3]])
		mi, _ := strconv.Atoi(lower[idx[4]:idx[5]])
		return formatClock(to24Hour(h, lower[idx[8]:idx[9]]), mi), true
	}

	for _, idx := range compactClockRe.FindAllStringSubmatchIndex(lower, -1) {
		if glued(lower, idx[0]) {
			continue
		}
		h, mi := splitCompactClock(lower[idx[2]:idx[3]])
		return formatClock(to24Hour(h, lower[idx[4]:idx[5]]), mi), true
	}

	for _, p := range namedPeriods {
		if p.re.MatchString(lower) {
			return p.clock, true
		}
	}
	return "", false
}

// glued reports whether a match starting at i continues a number, as the
// "15" in "7.15" or the "30" in "1:30" does. Such digits are not an hour.
func glued(s string, i int) bool {
	if i == 0 {
		return false
	}
	c := s[i-1]
	return c == '.' || c == ':' || (c >= '0' && c <= '9')
}

// splitCompactClock reads "5" as 5:00, "1130" as 11:30 and "930" as 9:30.
func splitCompactClock(digits string) (int, int) {
	if len(digits) <= 2 {
		h, _ := strconv.Atoi(digits)
		return h, 0
	}
	cut := len(digits) - 2
	h, _ := strconv.Atoi(digits[:cut])
	m, _ := strconv.Atoi(digits[cut:])
	return h, m
}

// to24Hour applies the am/pm marker: 12am is 0, 12pm stays 12, other pm hours add 12.
func to24Hour(hour int, meridiem string) int {
	switch {
	case strings.HasPrefix(meridiem, "p") && hour < 12:
		return hour + 12
	case strings.HasPrefix(meridiem, "a") && hour == 12:
		return 0
	}
	return hour
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", clamp(hour, 0, 23), clamp(minute, 0, 59))
}

func formatClockSeconds(hour, minute, second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", clamp(hour, 0, 23), clamp(minute, 0, 59), clamp(second, 0, 59))
}
