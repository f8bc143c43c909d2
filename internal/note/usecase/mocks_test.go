package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
	"ai-notes/pkg/datemath"
	"ai-notes/pkg/llmprovider"
	"ai-notes/pkg/log"
)

// refNow is Friday 2025-10-17 10:00 UTC.
var refNow = time.Date(2025, time.October, 17, 10, 0, 0, 0, time.UTC)

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu      sync.Mutex
	notes   map[string]note.Note
	clock   time.Time
	failErr error
	lastOpt repo.ListNotesOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{notes: map[string]note.Note{}, clock: refNow}
}

func (m *mockRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *mockRepo) Migrate(ctx context.Context) error { return m.failErr }

func (m *mockRepo) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return note.Note{}, m.failErr
	}
	now := m.tick()
	n := note.Note{
		ID: uuid.NewString(), Title: opt.Title, Content: opt.Content, Tags: opt.Tags,
		EventDate: opt.EventDate, EventTime: opt.EventTime, CreatedAt: now, UpdatedAt: now,
	}
	m.notes[n.ID] = n
	return n, nil
}

func (m *mockRepo) GetOneNote(ctx context.Context, id string) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return note.Note{}, m.failErr
	}
	return m.notes[id], nil
}

func (m *mockRepo) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]note.Note, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastOpt = opt
	if m.failErr != nil {
		return nil, 0, m.failErr
	}

	q := strings.ToLower(opt.Query)
	var matched []note.Note
	for _, n := range m.notes {
		hay := strings.ToLower(n.Title + " " + n.Content + " " + strings.Join(n.Tags, ","))
		if q == "" || strings.Contains(hay, q) {
			matched = append(matched, n)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].UpdatedAt.After(matched[j].UpdatedAt) })

	total := len(matched)
	if opt.Offset >= len(matched) {
		return []note.Note{}, total, nil
	}
	matched = matched[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

func (m *mockRepo) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return note.Note{}, m.failErr
	}
	n, ok := m.notes[opt.ID]
	if !ok {
		return note.Note{}, nil
	}
	n.Title, n.Content, n.Tags = opt.Title, opt.Content, opt.Tags
	n.EventDate, n.EventTime = opt.EventDate, opt.EventTime
	n.UpdatedAt = m.tick()
	m.notes[n.ID] = n
	return n, nil
}

func (m *mockRepo) DeleteNote(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	delete(m.notes, id)
	return nil
}

func (m *mockRepo) CountNotes(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return 0, m.failErr
	}
	return len(m.notes), nil
}

func (m *mockRepo) Driver() string { return "memory" }

// mockLLM replies with canned text and records the prompts it saw.
type mockLLM struct {
	mu       sync.Mutex
	reply    func(req *llmprovider.Request) string
	err      error
	requests []*llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: m.reply(req)}}},
	}, nil
}

func (m *mockLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func staticReply(text string) func(*llmprovider.Request) string {
	return func(*llmprovider.Request) string { return text }
}

var errStore = errors.New("store down")

func newTestParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p.WithClock(func() time.Time { return refNow })
}

func newTestUseCase(t *testing.T, r *mockRepo, llm llmprovider.Generator) *implUseCase {
	t.Helper()
	uc, err := New(log.NewNop(), r, llm, newTestParser(t), Options{TranslationCacheSize: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc.(*implUseCase)
}

func strPtr(s string) *string { return &s }
