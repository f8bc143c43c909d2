package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"ai-notes/internal/note"
	"ai-notes/pkg/datemath"
)

func seed(t *testing.T, uc *implUseCase) note.Note {
	t.Helper()
	out, err := uc.Create(context.Background(), note.CreateInput{
		Title: "Call", Content: "Call mom", Tags: []string{"family"},
		EventDate: datemath.RawValue("2025-10-20"), EventTime: datemath.RawValue("19:00"),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return out.Note
}

func TestDetail(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo(), nil)
	n := seed(t, uc)

	out, err := uc.Detail(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Note.ID != n.ID {
		t.Errorf("ID = %s, want %s", out.Note.ID, n.ID)
	}

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		if _, err := uc.Detail(context.Background(), id); !errors.Is(err, note.ErrNoteNotFound) {
			t.Errorf("Detail(%q) err = %v, want ErrNoteNotFound", id, err)
		}
	}
}

func TestUpdate(t *testing.T) {
	tcs := map[string]struct {
		input    func(id string) note.UpdateInput
		wantErr  error
		wantNote func(before note.Note) note.Note
	}{
		"empty update keeps everything": {
			input:    func(id string) note.UpdateInput { return note.UpdateInput{ID: id} },
			wantNote: func(b note.Note) note.Note { return b },
		},
		"title only": {
			input: func(id string) note.UpdateInput { return note.UpdateInput{ID: id, Title: strPtr(" Call dad ")} },
			wantNote: func(b note.Note) note.Note {
				b.Title = "Call dad"
				return b
			},
		},
		"blank title rejected": {
			input:   func(id string) note.UpdateInput { return note.UpdateInput{ID: id, Title: strPtr(" ")} },
			wantErr: note.ErrTitleRequired,
		},
		"blank content rejected": {
			input:   func(id string) note.UpdateInput { return note.UpdateInput{ID: id, Content: strPtr("")} },
			wantErr: note.ErrContentRequired,
		},
		"null clears tags and schedule": {
			input: func(id string) note.UpdateInput {
				return note.UpdateInput{
					ID: id, TagsSet: true,
					EventDateSet: true, EventDate: datemath.EmptyValue(),
					EventTimeSet: true, EventTime: datemath.RawValue("null"),
				}
			},
			wantNote: func(b note.Note) note.Note {
				b.Tags, b.EventDate, b.EventTime = []string{}, "", ""
				return b
			},
		},
		"new schedule normalized": {
			input: func(id string) note.UpdateInput {
				return note.UpdateInput{
					ID:           id,
					EventDateSet: true, EventDate: datemath.RawValue("2025-11-02T08:00:00Z"),
					EventTimeSet: true, EventTime: datemath.RawValue("7:00 am"),
				}
			},
			wantNote: func(b note.Note) note.Note {
				b.EventDate, b.EventTime = "2025-11-02", "07:00:00"
				return b
			},
		},
		"unknown id": {
			input:   func(string) note.UpdateInput { return note.UpdateInput{ID: uuid.NewString(), Title: strPtr("x")} },
			wantErr: note.ErrNoteNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newTestUseCase(t, newMockRepo(), nil)
			before := seed(t, uc)

			out, err := uc.Update(context.Background(), tc.input(before.ID))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := tc.wantNote(before)
			got := out.Note
			if !got.UpdatedAt.After(before.UpdatedAt) {
				t.Errorf("UpdatedAt should advance")
			}
			got.UpdatedAt, want.UpdatedAt = before.UpdatedAt, before.UpdatedAt
			if !reflect.DeepEqual(got, want) {
				t.Errorf("note = %+v\nwant   %+v", got, want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	n := seed(t, uc)

	if err := uc.Delete(context.Background(), n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.notes) != 0 {
		t.Errorf("note should be removed")
	}
	if err := uc.Delete(context.Background(), n.ID); !errors.Is(err, note.ErrNoteNotFound) {
		t.Errorf("second delete err = %v, want ErrNoteNotFound", err)
	}
}
