package usecase

import (
	"strings"

	"github.com/google/uuid"

	"ai-notes/pkg/datemath"
)

// cleanTags trims every tag and drops blanks.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// validID reports whether id can name a stored note.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func normalizeDate(v datemath.Value) string {
	d, _ := datemath.NormalizeDate(v)
	return d
}

func normalizeTime(v datemath.Value) string {
	t, _ := datemath.NormalizeTime(v)
	return t
}

// schedule runs the inferrers over fragments and returns the event date and
// a canonical HH:MM:SS time, each empty when absent.
func (uc *implUseCase) schedule(fragments ...string) (string, string) {
	r := uc.dateMath.Infer(fragments...)
	return r.Date, normalizeTime(datemath.RawValue(r.Time))
}

// fillSchedule keeps explicit values and infers the missing ones.
func (uc *implUseCase) fillSchedule(date, clock string, fragments ...string) (string, string) {
	if date != "" && clock != "" {
		return date, clock
	}
	inferredDate, inferredTime := uc.schedule(fragments...)
	if date == "" {
		date = inferredDate
	}
	if clock == "" {
		clock = inferredTime
	}
	return date, clock
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func (uc *implUseCase) languageOr(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	return uc.language
}
