package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-notes/internal/note"
)

func TestInfer(t *testing.T) {
	tcs := map[string]struct {
		input    note.InferInput
		wantDate string
		wantTime string
		wantRef  time.Time
	}{
		"clock reference": {
			input:    note.InferInput{Text: "Call on next Monday evening"},
			wantDate: "2025-10-20", wantTime: "19:00:00", wantRef: refNow,
		},
		"explicit reference": {
			input:    note.InferInput{Text: "dinner tomorrow at 7:30pm", Reference: time.Date(2024, time.February, 28, 23, 0, 0, 0, time.UTC)},
			wantDate: "2024-02-29", wantTime: "19:30:00", wantRef: time.Date(2024, time.February, 28, 23, 0, 0, 0, time.UTC),
		},
		"nothing to find": {
			input:   note.InferInput{Text: "just a thought"},
			wantRef: refNow,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newTestUseCase(t, newMockRepo(), nil)

			out, err := uc.Infer(context.Background(), tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.EventDate != tc.wantDate || out.EventTime != tc.wantTime {
				t.Errorf("got %q %q, want %q %q", out.EventDate, out.EventTime, tc.wantDate, tc.wantTime)
			}
			if !out.Reference.Equal(tc.wantRef) {
				t.Errorf("Reference = %v, want %v", out.Reference, tc.wantRef)
			}
		})
	}
}

func TestInfer_BlankText(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo(), nil)
	if _, err := uc.Infer(context.Background(), note.InferInput{Text: " "}); !errors.Is(err, note.ErrTextRequired) {
		t.Fatalf("err = %v, want ErrTextRequired", err)
	}
}

func TestStats(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	seed(t, uc)
	seed(t, uc)

	out, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalNotes != 2 || out.Driver != "memory" {
		t.Errorf("out = %+v", out)
	}

	r.failErr = errStore
	if _, err := uc.Stats(context.Background()); !errors.Is(err, errStore) {
		t.Errorf("err = %v, want errStore", err)
	}
}
