package datemath

import "time"

// weekdayNames lists spellings per weekday, Monday first.
var weekdayNames = [7][]string{
	{"monday", "mon"},
	{"tuesday", "tues", "tue"},
	{"wednesday", "wed"},
	{"thursday", "thurs", "thur", "thu"},
	{"friday", "fri"},
	{"saturday", "sat"},
	{"sunday", "sun"},
}

// monthNames lists spellings per month, January first.
var monthNames = [12][]string{
	{"january", "jan"},
	{"february", "feb"},
	{"march", "mar"},
	{"april", "apr"},
	{"may"},
	{"june", "jun"},
	{"july", "jul"},
	{"august", "aug"},
	{"september", "sept", "sep"},
	{"october", "oct"},
	{"november", "nov"},
	{"december", "dec"},
}

// ambiguousWords are spellings that are also everyday English ("I sat
// down", "enjoy the sun", "we may").
var ambiguousWords = map[string]bool{"sat": true, "sun": true, "may": true}

var (
	// weekdayIndex maps a weekday spelling to its Monday-based index (0-6).
	weekdayIndex = buildIndex(weekdayNames[:], 0)
	// monthIndex maps a month spelling to 1-12.
	monthIndex = buildIndex(monthNames[:], 1)
)

// Regex alternations. Longer spellings come first so the leftmost-first
// matcher never stops at a prefix.
const (
	weekdayPattern = `monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun`
	monthPattern   = `january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sept|sep|october|oct|november|nov|december|dec`
)

func buildIndex(names [][]string, base int) map[string]int {
	idx := make(map[string]int)
	for i, spellings := range names {
		for _, s := range spellings {
			idx[s] = i + base
		}
	}
	return idx
}

// mondayIndex converts a time.Weekday (Sunday = 0) to the Monday-based index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
