package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Scribe/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text  string
	err   error
	delay time.Duration
}

func (s *stubGenerator) Generate(ctx context.Context, _ string) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func TestWithTimeout(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		stub    *stubGenerator
		want    string
		wantErr error
	}{
		{name: "ok", stub: &stubGenerator{text: "## Intro"}, want: "## Intro"},
		{name: "timeout", stub: &stubGenerator{text: "late", delay: time.Second}, wantErr: ErrTimeout},
		{name: "empty", stub: &stubGenerator{}, wantErr: ErrEmptyResponse},
		{name: "upstream error", stub: &stubGenerator{err: boom}, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := WithTimeout(tt.stub, 50*time.Millisecond)
			got, err := g.Generate(context.Background(), "prompt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlogPrompt(t *testing.T) {
	p := BlogPrompt("Go generics")

	assert.Contains(t, p, `"Go generics"`)
	assert.Contains(t, p, "DO NOT include the title")
	assert.Contains(t, p, "(##)")
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"generated body"}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAI(&config.LLM{APIKey: "k", BaseURL: srv.URL, Model: "m"})
	got, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated body", got)
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := NewGenerator(&config.Config{LLM: &config.LLM{Provider: "nope"}})
	assert.Error(t, err)
}

func TestNewGeneratorWithoutAPIKey(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderOpenAI} {
		t.Run(provider, func(t *testing.T) {
			g, err := NewGenerator(&config.Config{LLM: &config.LLM{Provider: provider, Timeout: time.Second}})
			require.NoError(t, err)

			_, err = g.Generate(context.Background(), "prompt")
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}
