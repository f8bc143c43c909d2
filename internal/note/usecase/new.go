package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"ai-notes/internal/note"
	"ai-notes/internal/note/repository"
	"ai-notes/pkg/datemath"
	"ai-notes/pkg/llmprovider"
	"ai-notes/pkg/log"
)

const (
	defaultListLimit    = 50
	maxListLimit        = 200
	defaultLanguage     = "English"
	defaultCacheEntries = 256
)

// Options tunes the note UseCase. Zero values fall back to defaults.
type Options struct {
	DefaultLanguage      string
	TranslationCacheSize int
}

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	llm      llmprovider.Generator
	dateMath *datemath.Parser
	language string
	cache    *lru.Cache[string, string]
}

var _ note.UseCase = (*implUseCase)(nil)

// New creates a new note UseCase implementation. llm may be nil, in which
// case the LLM-backed operations return note.ErrLLMUnavailable.
func New(l log.Logger, repo repository.Repository, llm llmprovider.Generator, dateMath *datemath.Parser, opt Options) (note.UseCase, error) {
	language := opt.DefaultLanguage
	if language == "" {
		language = defaultLanguage
	}
	size := opt.TranslationCacheSize
	if size <= 0 {
		size = defaultCacheEntries
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		repo:     repo,
		l:        l,
		llm:      llm,
		dateMath: dateMath,
		language: language,
		cache:    cache,
	}, nil
}
