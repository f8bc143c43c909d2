package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ai-notes/internal/note"
	"ai-notes/pkg/datemath"
)

func TestCreate(t *testing.T) {
	tcs := map[string]struct {
		input     note.CreateInput
		wantErr   error
		wantTags  []string
		wantDate  string
		wantTime  string
		wantTitle string
	}{
		"missing title": {
			input:   note.CreateInput{Title: "  ", Content: "x"},
			wantErr: note.ErrTitleRequired,
		},
		"missing content": {
			input:   note.CreateInput{Title: "x", Content: ""},
			wantErr: note.ErrContentRequired,
		},
		"explicit values normalized": {
			input: note.CreateInput{
				Title: " Dentist ", Content: "checkup", Tags: []string{" health ", "", "teeth"},
				EventDate: datemath.RawValue("20/10/2025"), EventTime: datemath.RawValue("3:05 pm"),
			},
			wantTitle: "Dentist",
			wantTags:  []string{"health", "teeth"},
			wantDate:  "2025-10-20",
			wantTime:  "15:05:00",
		},
		"unparseable explicit values are dropped": {
			input: note.CreateInput{
				Title: "t", Content: "c",
				EventDate: datemath.RawValue("someday"), EventTime: datemath.RawValue("whenever"),
			},
			wantTitle: "t",
			wantTags:  []string{},
		},
		"no inference without auto schedule": {
			input:     note.CreateInput{Title: "Gym tomorrow", Content: "at 6pm"},
			wantTitle: "Gym tomorrow",
			wantTags:  []string{},
		},
		"auto schedule fills both": {
			input:     note.CreateInput{Title: "Gym tomorrow", Content: "at 6pm", AutoSchedule: true},
			wantTitle: "Gym tomorrow",
			wantTags:  []string{},
			wantDate:  "2025-10-18",
			wantTime:  "18:00:00",
		},
		"auto schedule keeps explicit date": {
			input: note.CreateInput{
				Title: "Gym tomorrow", Content: "at 6pm", AutoSchedule: true,
				EventDate: datemath.RawValue("2025-12-01"),
			},
			wantTitle: "Gym tomorrow",
			wantTags:  []string{},
			wantDate:  "2025-12-01",
			wantTime:  "18:00:00",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newMockRepo()
			uc := newTestUseCase(t, r, nil)

			out, err := uc.Create(context.Background(), tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				if len(r.notes) != 0 {
					t.Errorf("nothing should be stored on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			n := out.Note
			if n.Title != tc.wantTitle {
				t.Errorf("Title = %q, want %q", n.Title, tc.wantTitle)
			}
			if !reflect.DeepEqual(n.Tags, tc.wantTags) {
				t.Errorf("Tags = %#v, want %#v", n.Tags, tc.wantTags)
			}
			if n.EventDate != tc.wantDate {
				t.Errorf("EventDate = %q, want %q", n.EventDate, tc.wantDate)
			}
			if n.EventTime != tc.wantTime {
				t.Errorf("EventTime = %q, want %q", n.EventTime, tc.wantTime)
			}
		})
	}
}

func TestCreate_RepoError(t *testing.T) {
	r := newMockRepo()
	r.failErr = errStore
	uc := newTestUseCase(t, r, nil)

	_, err := uc.Create(context.Background(), note.CreateInput{Title: "t", Content: "c"})
	if !errors.Is(err, errStore) {
		t.Fatalf("err = %v, want errStore", err)
	}
}
