package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Scribe/config"
	"Scribe/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
database:
  driver: sqlite
  database: ":memory:"
jwt:
  secret: cli-secret
  expire: 2h
`

func writeConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GEMINI_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestTokenCommand(t *testing.T) {
	path := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want time.Duration
	}{
		{name: "jwt.expire by default", want: 2 * time.Hour},
		{name: "explicit ttl", args: []string{"--ttl", "5m"}, want: 5 * time.Minute},
		{name: "no expiry", args: []string{"--ttl", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			app := newApp()
			app.Writer = &out

			args := append([]string{"api-server", "--config", path, "token", "--user", "7"}, tt.args...)
			require.NoError(t, app.Run(args))

			claims, err := jwt.ParseToken([]byte("cli-secret"), strings.TrimSpace(out.String()))
			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
			if tt.want == 0 {
				assert.Nil(t, claims.ExpiresAt)
				return
			}
			require.NotNil(t, claims.ExpiresAt)
			assert.Equal(t, tt.want, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
		})
	}
}

func TestInitServerWithoutLLMKey(t *testing.T) {
	conf, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	app, cleanup, err := InitServer(conf)
	require.NoError(t, err)
	defer cleanup()

	tok, err := jwt.GenerateToken([]byte("cli-secret"), 1, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog/with-ai", strings.NewReader(`{"title":"Go"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	app.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to generate content"}`, w.Body.String())
}
