package usecase

import (
	"context"
	"strings"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
)

// Create validates and stores a new Note. Explicit event values that cannot
// be normalized are dropped rather than rejected.
func (uc *implUseCase) Create(ctx context.Context, input note.CreateInput) (note.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return note.CreateOutput{}, note.ErrTitleRequired
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return note.CreateOutput{}, note.ErrContentRequired
	}

	eventDate := normalizeDate(input.EventDate)
	eventTime := normalizeTime(input.EventTime)
	if input.AutoSchedule {
		eventDate, eventTime = uc.fillSchedule(eventDate, eventTime, title, content)
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		Title:     title,
		Content:   content,
		Tags:      cleanTags(input.Tags),
		EventDate: eventDate,
		EventTime: eventTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateNote: %v", err)
		return note.CreateOutput{}, err
	}

	return note.CreateOutput{Note: n}, nil
}
