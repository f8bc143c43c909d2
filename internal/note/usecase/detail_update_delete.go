package usecase

import (
	"context"
	"strings"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
)

// Detail retrieves a single Note by ID. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (note.DetailOutput, error) {
	n, err := uc.getNote(ctx, id)
	if err != nil {
		return note.DetailOutput{}, err
	}
	return note.DetailOutput{Note: n}, nil
}

// Update applies a partial update. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input note.UpdateInput) (note.UpdateOutput, error) {
	existing, err := uc.getNote(ctx, input.ID)
	if err != nil {
		return note.UpdateOutput{}, err
	}

	opt := repo.UpdateNoteOptions{
		ID:        existing.ID,
		Title:     existing.Title,
		Content:   existing.Content,
		Tags:      existing.Tags,
		EventDate: existing.EventDate,
		EventTime: existing.EventTime,
	}

	if input.Title != nil {
		if opt.Title = strings.TrimSpace(*input.Title); opt.Title == "" {
			return note.UpdateOutput{}, note.ErrTitleRequired
		}
	}
	if input.Content != nil {
		if opt.Content = strings.TrimSpace(*input.Content); opt.Content == "" {
			return note.UpdateOutput{}, note.ErrContentRequired
		}
	}
	if input.TagsSet {
		opt.Tags = cleanTags(input.Tags)
	}
	if input.EventDateSet {
		opt.EventDate = normalizeDate(input.EventDate)
	}
	if input.EventTimeSet {
		opt.EventTime = normalizeTime(input.EventTime)
	}

	n, err := uc.repo.UpdateNote(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return note.UpdateOutput{}, err
	}
	if n.ID == "" {
		return note.UpdateOutput{}, note.ErrNoteNotFound
	}
	return note.UpdateOutput{Note: n}, nil
}

// Delete removes a Note by ID. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getNote(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteNote(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteNote: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getNote(ctx context.Context, id string) (note.Note, error) {
	if !validID(id) {
		return note.Note{}, note.ErrNoteNotFound
	}
	n, err := uc.repo.GetOneNote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getNote GetOneNote: %v", err)
		return note.Note{}, err
	}
	if n.ID == "" {
		return note.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}
