package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (note.Note, error) {
	var n note.Note
	var tags pq.StringArray
	err := s.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.EventDate, &n.EventTime, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return note.Note{}, err
	}
	n.Tags = []string(tags)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return n, nil
}

// Migrate creates the notes table when it does not exist yet.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return repo.ErrFailedToMigrate
	}
	return nil
}

// CreateNote inserts a new Note row and returns the created entity.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (note.Note, error) {
	query := `
		INSERT INTO notes (id, title, content, tags, event_date, event_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::date, NULLIF($6, '')::time, $7, $7)
		RETURNING ` + noteColumns

	now := time.Now().UTC()
	n, err := scanNote(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Title, opt.Content, pq.Array(nonNil(opt.Tags)), opt.EventDate, opt.EventTime, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return note.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNote retrieves a single Note by ID.
// Returns zero-value Note (ID == "") when not found.
func (r *implRepository) GetOneNote(ctx context.Context, id string) (note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 LIMIT 1`

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return note.Note{}, repo.ErrFailedToGet
	}
	return n, nil
}

// ListNotes returns a page of Notes, most recently updated first, and the total count.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]note.Note, int, error) {
	// 1. Count total (without pagination)
	where, countArgs := r.buildFilter(opt)
	var total int
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM notes WHERE %s", where), countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM notes %s", noteColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, 0, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return notes, total, nil
}

// UpdateNote rewrites a Note by ID and returns the updated entity.
// Returns zero-value Note when the row no longer exists.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (note.Note, error) {
	query := `
		UPDATE notes
		SET title = $1, content = $2, tags = $3,
			event_date = NULLIF($4, '')::date, event_time = NULLIF($5, '')::time, updated_at = $6
		WHERE id = $7
		RETURNING ` + noteColumns

	n, err := scanNote(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Content, pq.Array(nonNil(opt.Tags)), opt.EventDate, opt.EventTime, time.Now().UTC(), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return note.Note{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

// DeleteNote removes a Note by ID.
func (r *implRepository) DeleteNote(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountNotes returns the number of stored notes.
func (r *implRepository) CountNotes(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountNotes"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
