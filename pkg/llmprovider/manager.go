package llmprovider

import (
	"context"
	"fmt"
	"time"

	"productivity-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Complete iterates through providers in priority order with fallback logic
// and returns the first successful completion text.
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	// Iterate through providers in priority order
	for _, provider := range m.providers {
		// Check if context is already cancelled (timeout exceeded)
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
			// Continue
		}

		// Call completeWithRetry for each provider
		result, err := m.completeWithRetry(ctx, provider, prompt)
		if err == nil {
			// On success, log metrics and return text
			m.logSuccess(ctx, provider, result)
			return result.Text, nil
		}

		// On failure, log error and try next provider
		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	// Return error if all providers fail
	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry implements retry mechanism with exponential backoff
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, prompt string) (*Result, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		// Add delay for retries (exponential backoff)
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
				// Continue after delay
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		// Attempt completion
		result, err := provider.Complete(ctx, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// logSuccess logs successful LLM completion with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, result *Result) {
	m.logger.Info(ctx, "LLM completion successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", result.Usage.InputTokens,
		"output_tokens", result.Usage.OutputTokens,
	)
}

// logFailure logs failed LLM completion attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM completion failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
