package datemath

import (
	"fmt"
	"time"
)

// Parser binds the inferrers to a timezone and a clock so that relative
// cues like "tomorrow" resolve against the user's local day.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Hong_Kong"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of the parser that reads "now" from clock.
func (p *Parser) WithClock(clock func() time.Time) *Parser {
	cp := *p
	cp.now = clock
	return &cp
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the reference instant in the parser's timezone.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

// Infer resolves fragments against the parser's clock.
func (p *Parser) Infer(fragments ...string) Result {
	return Infer(p.Now(), fragments...)
}

// InferAt resolves fragments against ref, viewed in the parser's timezone.
func (p *Parser) InferAt(ref time.Time, fragments ...string) Result {
	return Infer(ref.In(p.location), fragments...)
}
