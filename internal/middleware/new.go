package middleware

import (
	"ai-notes/config"
	"ai-notes/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l          log.Logger
	cors       config.CORSConfig
	llmLimiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		cors:       cfg.CORS,
		llmLimiter: newRateLimiter(cfg.RateLimit.LLMPerMin),
	}
}
