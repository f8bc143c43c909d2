package datemath

import (
	"strings"
	"time"
)

// Infer runs the date and time inferrers over all fragments. Fragments are
// joined with a separator so a pattern never spans two of them.
func Infer(ref time.Time, fragments ...string) Result {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return Result{}
	}
	text := strings.Join(parts, fragmentSeparator)

	var r Result
	r.Date, _ = InferDate(text, ref)
	r.Time, _ = InferTime(text)
	return r
}
