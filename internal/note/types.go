package note

import (
	"time"

	"ai-notes/pkg/datemath"
)

// --- Note Domain Model ---

// Note is a stored note. EventDate is YYYY-MM-DD and EventTime HH:MM:SS when
// set, empty otherwise.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	EventDate string
	EventTime string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title     string
	Content   string
	Tags      []string
	EventDate datemath.Value
	EventTime datemath.Value

	// AutoSchedule fills missing event fields from the title and content.
	AutoSchedule bool
}

type ListInput struct {
	Query  string
	Limit  int
	Offset int
}

// UpdateInput carries a partial update. Nil pointers and unset flags leave
// the stored value untouched; a set flag with an empty value clears it.
type UpdateInput struct {
	ID           string
	Title        *string
	Content      *string
	TagsSet      bool
	Tags         []string
	EventDateSet bool
	EventDate    datemath.Value
	EventTimeSet bool
	EventTime    datemath.Value
}

type SearchInput struct {
	Query string
	Limit int
}

type GenerateInput struct {
	Text     string
	Language string
}

type GenerateAndSaveInput struct {
	Text      string
	Language  string
	EventDate datemath.Value
	EventTime datemath.Value
}

type TranslateInput struct {
	ID             string
	TargetLanguage string
	Title          *string
	Content        *string
}

type InferInput struct {
	Text      string
	Reference time.Time // zero means now in the configured timezone
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Note Note
}

type ListOutput struct {
	Notes  []Note
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Note Note
}

type UpdateOutput struct {
	Note Note
}

type SearchOutput struct {
	Notes []Note
	Query string
}

// GenerateOutput is an LLM-drafted note that has not been persisted.
type GenerateOutput struct {
	Title        string
	Content      string
	Tags         []string
	EventDate    string
	EventTime    string
	OriginalText string
	Language     string
}

type GenerateAndSaveOutput struct {
	Note         Note
	OriginalText string
	Language     string
}

type TranslateOutput struct {
	ID             string
	TargetLanguage string
	Title          string
	Content        string
}

type InferOutput struct {
	EventDate string
	EventTime string
	Reference time.Time
}

type StatsOutput struct {
	TotalNotes int
	Driver     string
}
