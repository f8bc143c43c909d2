package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ai-notes/config"
	"ai-notes/internal/note/usecase"
	"ai-notes/pkg/datemath"
	"ai-notes/pkg/llmprovider"
	"ai-notes/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appConfig   *config.Config

	// Storage
	db       *sql.DB
	dbDriver string

	// Notes domain
	llm         llmprovider.Generator
	dateMath    *datemath.Parser
	noteOptions usecase.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Storage
	DB       *sql.DB
	DBDriver string

	// Notes domain. LLM may be nil; generation routes then answer 503.
	LLM         llmprovider.Generator
	DateMath    *datemath.Parser
	NoteOptions usecase.Options
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		appConfig:   cfg.AppConfig,
		db:          cfg.DB,
		dbDriver:    cfg.DBDriver,
		llm:         cfg.LLM,
		dateMath:    cfg.DateMath,
		noteOptions: cfg.NoteOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
