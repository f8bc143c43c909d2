package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"ai-notes/internal/middleware"
	noteHTTP "ai-notes/internal/note/delivery/http"
	"ai-notes/internal/note/repository"
	notePostgre "ai-notes/internal/note/repository/postgre"
	noteSQLite "ai-notes/internal/note/repository/sqlite"
	noteUC "ai-notes/internal/note/usecase"
	"ai-notes/pkg/database"
)

// setupNoteDomain migrates the notes schema and registers /api/v1/notes.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := srv.noteRepository()
	if err != nil {
		return err
	}
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	// 2. UseCase
	uc, err := noteUC.New(srv.l, repo, srv.llm, srv.dateMath, srv.noteOptions)
	if err != nil {
		return err
	}

	// 3. HTTP Handler
	h := noteHTTP.New(srv.l, uc)

	// 4. Routes
	noteHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Note domain registered (driver=%s, llm=%t)", repo.Driver(), srv.llm != nil)
	return nil
}

func (srv HTTPServer) noteRepository() (repository.Repository, error) {
	switch srv.dbDriver {
	case database.DriverPostgres:
		return notePostgre.New(srv.db, srv.l), nil
	case database.DriverSQLite, "":
		return noteSQLite.New(srv.db, srv.l), nil
	default:
		return nil, fmt.Errorf("unsupported note storage driver %q", srv.dbDriver)
	}
}
