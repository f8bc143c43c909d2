package repository

import "strings"

// CreateNoteOptions holds parameters for inserting a new Note. Event fields
// are already canonical or empty.
type CreateNoteOptions struct {
	Title     string
	Content   string
	Tags      []string
	EventDate string
	EventTime string
}

// ListNotesOptions holds filter and pagination parameters for listing Notes.
// Query matches title, content and tags case-insensitively.
type ListNotesOptions struct {
	Query  string
	Limit  int
	Offset int
}

// UpdateNoteOptions replaces every mutable column of a Note.
type UpdateNoteOptions struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	EventDate string
	EventTime string
}

// LikePattern wraps q for a substring LIKE match, escaping wildcards with
// a backslash.
func LikePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(q)) + "%"
}
