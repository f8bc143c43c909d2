package usecase

import (
	"context"
	"strings"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
)

// List returns a page of Notes, most recently updated first.
func (uc *implUseCase) List(ctx context.Context, input note.ListInput) (note.ListOutput, error) {
	limit := clampLimit(input.Limit)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	notes, total, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{
		Query:  strings.TrimSpace(input.Query),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotes: %v", err)
		return note.ListOutput{}, err
	}

	return note.ListOutput{
		Notes:  notes,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Search matches notes by title, content or tag. A blank query matches nothing.
func (uc *implUseCase) Search(ctx context.Context, input note.SearchInput) (note.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return note.SearchOutput{Notes: []note.Note{}}, nil
	}

	notes, _, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{
		Query: query,
		Limit: clampLimit(input.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListNotes: %v", err)
		return note.SearchOutput{}, err
	}

	return note.SearchOutput{Notes: notes, Query: query}, nil
}
