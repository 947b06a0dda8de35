package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Scribe/config"
	"Scribe/pkg/log"

	"go.uber.org/zap"
)

var (
	ErrTimeout       = errors.New("llm: generation timed out")
	ErrEmptyResponse = errors.New("llm: empty response")
	ErrNotConfigured = errors.New("llm: no api key configured")
)

// Generator turns a prompt into raw model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the provider selected by conf.LLM and bounds every
// call by conf.LLM.Timeout. Without an api key the server still starts and
// every call fails with ErrNotConfigured.
func NewGenerator(conf *config.Config) (Generator, error) {
	if conf.LLM.Provider != config.ProviderGemini && conf.LLM.Provider != config.ProviderOpenAI {
		return nil, fmt.Errorf("unknown llm provider %q", conf.LLM.Provider)
	}
	if conf.LLM.APIKey == "" {
		log.L.Warn("llm api key missing, content generation disabled", zap.String("provider", conf.LLM.Provider))
		return unavailable{}, nil
	}

	var (
		g   Generator
		err error
	)
	switch conf.LLM.Provider {
	case config.ProviderGemini:
		g, err = NewGemini(conf.LLM)
	case config.ProviderOpenAI:
		g = NewOpenAI(conf.LLM)
	}
	if err != nil {
		return nil, err
	}
	return WithTimeout(g, conf.LLM.Timeout), nil
}

type unavailable struct{}

func (unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout wraps g so a call that exceeds d fails with ErrTimeout.
func WithTimeout(g Generator, d time.Duration) Generator {
	return &timeoutGenerator{next: g, timeout: d}
}

func (t *timeoutGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	text, err := t.next.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.L.Warn("llm generate timeout", zap.Duration("elapsed", time.Since(start)))
			return "", ErrTimeout
		}
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	log.L.Info("llm generate", zap.Int("length", len(text)), zap.Duration("gen time", time.Since(start)))
	return text, nil
}
