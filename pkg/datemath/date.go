package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tomorrowRe    = regexp.MustCompile(`\b(?:tomorrow|tmrw|tmr)\b`)
	todayRe       = regexp.MustCompile(`\btoday\b`)
	weekdayRe     = regexp.MustCompile(`\b(?:(this|next)\s+)?(` + weekdayPattern + `)\b`)
	dayMonthRe    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthPattern + `)\.?(?:,?\s+(\d{4}))?\b`)
	monthDayRe    = regexp.MustCompile(`\b(` + monthPattern + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,4})[-/.](\d{1,2})[-/.](\d{1,4})(?:\b|t\d)`)
)

// InferDate scans free text for a date cue and returns it as YYYY-MM-DD.
// Relative cues resolve against ref. Rules are tried in priority order:
// relative days, weekdays, "17 October", "October 17", numeric tokens.
func InferDate(text string, ref time.Time) (string, bool) {
	src := dateText{raw: text, lower: strings.ToLower(text)}
	today := startOfDay(ref)

	if tomorrowRe.MatchString(src.lower) {
		return today.AddDate(0, 0, 1).Format(DateLayout), true
	}
	if todayRe.MatchString(src.lower) {
		return today.Format(DateLayout), true
	}

	for _, rule := range []func(dateText, time.Time) (time.Time, bool){
		matchWeekday,
		matchDayMonth,
		matchMonthDay,
		matchNumericDate,
	} {
		if d, ok := rule(src, today); ok {
			return d.Format(DateLayout), true
		}
	}
	return "", false
}

// dateText carries the caller's text next to its lower-cased form so rules
// can match case-insensitively and still look at the original casing.
type dateText struct {
	raw   string
	lower string
}

// capitalised reports whether the word at byte offset i starts with an upper
// case letter in the raw text. When lower-casing changed byte lengths the
// offsets no longer line up and the word is accepted.
func (t dateText) capitalised(i int) bool {
	if len(t.raw) != len(t.lower) {
		return true
	}
	c := t.raw[i]
	return c >= 'A' && c <= 'Z'
}

// matchWeekday resolves "[this|next] <weekday>". Bare and "this" pick the
// upcoming occurrence including today; "next" skips today to a week out.
// "sat" and "sun" need a modifier or a capital letter.
func matchWeekday(src dateText, today time.Time) (time.Time, bool) {
	for _, m := range weekdayRe.FindAllStringSubmatchIndex(src.lower, -1) {
		var modifier string
		if m[2] >= 0 {
			modifier = src.lower[m[2]:m[3]]
		}
		name := src.lower[m[4]:m[5]]
		if modifier == "" && ambiguousWords[name] && !src.capitalised(m[4]) {
			continue
		}

		days := (weekdayIndex[name] - mondayIndex(today.Weekday()) + 7) % 7
		if modifier == "next" && days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), true
	}
	return time.Time{}, false
}

func matchDayMonth(src dateText, today time.Time) (time.Time, bool) {
	for _, m := range dayMonthRe.FindAllStringSubmatch(src.lower, -1) {
		if d, ok := calendarDate(m[3], monthIndex[m[2]], m[1], today.Year()); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// matchMonthDay needs a capital "May" when the month leads, so "we may 3
// times" stays free of dates.
func matchMonthDay(src dateText, today time.Time) (time.Time, bool) {
	for _, m := range monthDayRe.FindAllStringSubmatchIndex(src.lower, -1) {
		month := src.lower[m[2]:m[3]]
		if ambiguousWords[month] && !src.capitalised(m[2]) {
			continue
		}
		var year string
		if m[6] >= 0 {
			year = src.lower[m[6]:m[7]]
		}
		if d, ok := calendarDate(year, monthIndex[month], src.lower[m[4]:m[5]], today.Year()); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func calendarDate(yearStr string, month int, dayStr string, defaultYear int) (time.Time, bool) {
	year := defaultYear
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
	}
	day, _ := strconv.Atoi(dayStr)
	return validDate(year, month, day)
}

// matchNumericDate handles D{1,4}[-/.]D{1,2}[-/.]D{1,4} tokens. A four digit
// first segment means YYYY/MM/DD; otherwise a segment above 12 decides which
// is the day, and DD/MM/YYYY is the default when both could be months.
// A trailing "T<hour>" from an ISO timestamp still ends the token.
func matchNumericDate(src dateText, _ time.Time) (time.Time, bool) {
	for _, m := range numericDateRe.FindAllStringSubmatch(src.lower, -1) {
		if d, ok := resolveNumericDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func resolveNumericDate(first, second, third string) (time.Time, bool) {
	a, _ := strconv.Atoi(first)
	b, _ := strconv.Atoi(second)
	c, _ := strconv.Atoi(third)

	if len(first) == 4 {
		if len(third) > 2 {
			return time.Time{}, false
		}
		return validDate(a, b, c)
	}

	year, ok := expandYear(third, c)
	if !ok {
		return time.Time{}, false
	}

	switch {
	case a > 12:
		return validDate(year, b, a)
	case b > 12:
		return validDate(year, a, b)
	default:
		return validDate(year, b, a)
	}
}

// expandYear accepts four digit years as-is and maps two digit years to 20YY.
func expandYear(raw string, n int) (int, bool) {
	switch len(raw) {
	case 4:
		return n, true
	case 2:
		return 2000 + n, true
	default:
		return 0, false
	}
}

// validDate builds a date and rejects anything time.Date would normalize
// (Feb 30, month 13, day 0).
func validDate(year, month, day int) (time.Time, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
