package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (note.Note, error) {
	var n note.Note
	var tags, createdAt, updatedAt string
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.EventDate, &n.EventTime, &createdAt, &updatedAt); err != nil {
		return note.Note{}, err
	}

	var err error
	if n.Tags, err = decodeTags(tags); err != nil {
		return note.Note{}, fmt.Errorf("decode tags: %w", err)
	}
	if n.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return note.Note{}, fmt.Errorf("parse created_at: %w", err)
	}
	if n.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return note.Note{}, fmt.Errorf("parse updated_at: %w", err)
	}
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
	const query = `
		INSERT INTO notes (id, title, content, tags, event_date, event_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	now := formatTimestamp(time.Now())
	_, err := r.db.ExecContext(ctx, query,
		id, opt.Title, opt.Content, encodeTags(opt.Tags), nullIfEmpty(opt.EventDate), nullIfEmpty(opt.EventTime), now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return note.Note{}, repo.ErrFailedToInsert
	}

	n, err := r.GetOneNote(ctx, id)
	if err != nil {
		return note.Note{}, err
	}
	if n.ID == "" {
		r.l.Errorf(ctx, "%s: inserted row %s not readable", r.dsn("CreateNote"), id)
		return note.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNote retrieves a single Note by ID.
// Returns zero-value Note (ID == "") when not found.
func (r *implRepository) GetOneNote(ctx context.Context, id string) (note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ? LIMIT 1`

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
	const query = `
		UPDATE notes
		SET title = ?, content = ?, tags = ?, event_date = ?, event_time = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Content, encodeTags(opt.Tags), nullIfEmpty(opt.EventDate), nullIfEmpty(opt.EventTime),
		formatTimestamp(time.Now()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return note.Note{}, repo.ErrFailedToUpdate
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return note.Note{}, nil
	}
	return r.GetOneNote(ctx, opt.ID)
}

// DeleteNote removes a Note by ID.
func (r *implRepository) DeleteNote(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
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
