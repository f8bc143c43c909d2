package postgre

import (
	"fmt"
	"strings"

	repo "ai-notes/internal/note/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL,
	content     TEXT NOT NULL,
	tags        TEXT[] NOT NULL DEFAULT '{}',
	event_date  DATE,
	event_time  TIME,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes (updated_at DESC);`

// noteColumns renders DATE and TIME columns in their canonical text form so
// scans never depend on the session timezone.
const noteColumns = `id, title, content, tags,
	COALESCE(to_char(event_date, 'YYYY-MM-DD'), ''),
	COALESCE(to_char(event_time, 'HH24:MI:SS'), ''),
	created_at, updated_at`

// buildFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListNotesOptions) (string, []any) {
	q := strings.TrimSpace(opt.Query)
	if q == "" {
		return "1=1", nil
	}
	cond := `(LOWER(title) LIKE $1 ESCAPE '\' OR LOWER(content) LIKE $1 ESCAPE '\'` +
		` OR LOWER(array_to_string(tags, ',')) LIKE $1 ESCAPE '\')`
	return cond, []any{repo.LikePattern(q)}
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListNotes.
func (r *implRepository) buildListQuery(opt repo.ListNotesOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	idx := len(args) + 1

	parts := []string{"WHERE " + where, "ORDER BY updated_at DESC, id"}

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
