package repository

import (
	"context"

	"ai-notes/internal/note"
)

// Repository is the data store for notes. Implementations return a zero-value
// Note (ID == "") when a lookup misses instead of an error.
//
//go:generate mockery --name Repository
type Repository interface {
	Migrate(ctx context.Context) error

	CreateNote(ctx context.Context, opt CreateNoteOptions) (note.Note, error)
	GetOneNote(ctx context.Context, id string) (note.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]note.Note, int, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (note.Note, error)
	DeleteNote(ctx context.Context, id string) error
	CountNotes(ctx context.Context) (int, error)

	// Driver names the backing store, e.g. "postgres".
	Driver() string
}
