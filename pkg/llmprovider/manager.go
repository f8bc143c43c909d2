package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-notes/pkg/log"
)

// Manager sends a request to its providers in priority order, retrying each
// one before falling back to the next. A blank reply counts as a failure.
// Manager satisfies Generator.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes retry and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // per provider, at least 1
	RetryDelay      time.Duration // doubled after every failed attempt
	MaxTotalTimeout time.Duration // bounds the whole chain; 0 means no bound
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent returns the first non-blank reply. Errors wrap
// ErrAllProvidersFailed together with the last provider error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m == nil || len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("llm chain stopped before provider %d of %d: %w", i+1, len(m.providers), err)
		}

		resp, err := m.tryProvider(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// Providers returns the configured providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

func (m *Manager) tryProvider(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)
	delay := m.config.RetryDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		switch {
		case err != nil:
			lastErr = err
		case strings.TrimSpace(resp.Text()) == "":
			lastErr = &ProviderError{Provider: provider.Name(), Err: ErrEmptyResponse}
		default:
			return resp, nil
		}
	}
	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var usage Usage
	if resp.Usage != nil {
		usage = *resp.Usage
	}
	m.logger.Info(ctx, "llm reply",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "llm provider failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
