package sqlite

import (
	"database/sql"
	"fmt"

	"ai-notes/internal/note/repository"
	"ai-notes/pkg/database"
	"ai-notes/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the note domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("note/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Driver() string {
	return database.DriverSQLite
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/sqlite.%s", method)
}
