package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-notes/internal/note"
)

func TestList(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if _, err := uc.Create(context.Background(), note.CreateInput{Title: title, Content: "c"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tcs := map[string]struct {
		input      note.ListInput
		wantLimit  int
		wantOffset int
		wantFirst  string
		wantCount  int
	}{
		"defaults": {
			input:     note.ListInput{},
			wantLimit: 50, wantOffset: 0, wantFirst: "Gamma", wantCount: 3,
		},
		"limit capped": {
			input:     note.ListInput{Limit: 1000},
			wantLimit: 200, wantOffset: 0, wantFirst: "Gamma", wantCount: 3,
		},
		"negative offset reset": {
			input:     note.ListInput{Limit: 1, Offset: -4},
			wantLimit: 1, wantOffset: 0, wantFirst: "Gamma", wantCount: 1,
		},
		"query trimmed": {
			input:     note.ListInput{Query: "  beta "},
			wantLimit: 50, wantOffset: 0, wantFirst: "Beta", wantCount: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := uc.List(context.Background(), tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Limit != tc.wantLimit || out.Offset != tc.wantOffset {
				t.Errorf("limit/offset = %d/%d, want %d/%d", out.Limit, out.Offset, tc.wantLimit, tc.wantOffset)
			}
			if r.lastOpt.Limit != tc.wantLimit {
				t.Errorf("repo limit = %d, want %d", r.lastOpt.Limit, tc.wantLimit)
			}
			if len(out.Notes) != tc.wantCount {
				t.Fatalf("got %d notes, want %d", len(out.Notes), tc.wantCount)
			}
			if out.Notes[0].Title != tc.wantFirst {
				t.Errorf("first = %s, want %s", out.Notes[0].Title, tc.wantFirst)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	if _, err := uc.Create(context.Background(), note.CreateInput{Title: "Badminton", Content: "at PolyU", Tags: []string{"sports"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := uc.Search(context.Background(), note.SearchInput{Query: "SPORTS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Notes) != 1 || out.Query != "SPORTS" {
		t.Errorf("out = %+v", out)
	}

	r.lastOpt.Query = "untouched"
	out, err = uc.Search(context.Background(), note.SearchInput{Query: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Notes == nil || len(out.Notes) != 0 {
		t.Errorf("blank query should return an empty, non-nil list")
	}
	if r.lastOpt.Query != "untouched" {
		t.Errorf("blank query should not reach the repository")
	}
}

func TestList_RepoError(t *testing.T) {
	r := newMockRepo()
	r.failErr = errStore
	uc := newTestUseCase(t, r, nil)

	if _, err := uc.List(context.Background(), note.ListInput{}); !errors.Is(err, errStore) {
		t.Fatalf("err = %v, want errStore", err)
	}
}
