package usecase

import (
	"context"
	"strings"

	"ai-notes/internal/note"
	"ai-notes/pkg/datemath"
)

// Infer exposes the date/time inference engine. A zero Reference means now in
// the configured timezone.
func (uc *implUseCase) Infer(ctx context.Context, input note.InferInput) (note.InferOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return note.InferOutput{}, note.ErrTextRequired
	}

	ref := input.Reference
	if ref.IsZero() {
		ref = uc.dateMath.Now()
	} else {
		ref = ref.In(uc.dateMath.Location())
	}

	r := uc.dateMath.InferAt(ref, input.Text)
	return note.InferOutput{
		EventDate: r.Date,
		EventTime: normalizeTime(datemath.RawValue(r.Time)),
		Reference: ref,
	}, nil
}

// Stats reports the number of stored notes and the storage driver.
func (uc *implUseCase) Stats(ctx context.Context) (note.StatsOutput, error) {
	total, err := uc.repo.CountNotes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountNotes: %v", err)
		return note.StatsOutput{}, err
	}
	return note.StatsOutput{TotalNotes: total, Driver: uc.repo.Driver()}, nil
}
