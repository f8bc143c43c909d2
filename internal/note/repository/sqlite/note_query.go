package sqlite

import (
	"encoding/json"
	"strings"
	"time"

	repo "ai-notes/internal/note/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	content     TEXT NOT NULL,
	tags        TEXT NOT NULL DEFAULT '[]',
	event_date  TEXT,
	event_time  TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes (updated_at DESC);`

const noteColumns = `id, title, content, tags, COALESCE(event_date, ''), COALESCE(event_time, ''), created_at, updated_at`

// timestampLayout is fixed width so that text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

func decodeTags(s string) ([]string, error) {
	tags := []string{}
	if s == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// buildFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListNotesOptions) (string, []any) {
	q := strings.TrimSpace(opt.Query)
	if q == "" {
		return "1=1", nil
	}
	pattern := repo.LikePattern(q)
	cond := `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\')`
	return cond, []any{pattern, pattern, pattern}
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListNotes.
func (r *implRepository) buildListQuery(opt repo.ListNotesOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	parts := []string{"WHERE " + where, "ORDER BY updated_at DESC, id"}

	// SQLite only accepts OFFSET after LIMIT; -1 means unbounded.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ? OFFSET ?")
		args = append(args, limit, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
