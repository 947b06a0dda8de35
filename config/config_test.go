package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: s3cret\n")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", conf.App.Env)
	assert.Equal(t, 8787, conf.Server.Http)
	assert.Equal(t, DriverMySQL, conf.Database.Driver)
	assert.Equal(t, ProviderGemini, conf.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", conf.LLM.Model)
	assert.Equal(t, 30*time.Second, conf.LLM.Timeout)
	assert.False(t, conf.Redis.Enabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "user:pw@tcp(db:3306)/scribe?parseTime=True")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REDIS_ADDR", "cache:6379")

	path := writeConfig(t, "jwt:\n  secret: file\nllm:\n  provider: openai\n")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Jwt.Secret)
	assert.Equal(t, "user:pw@tcp(db:3306)/scribe?parseTime=True", conf.Database.DSN())
	assert.Equal(t, "sk-test", conf.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", conf.LLM.Model)
	assert.True(t, conf.Redis.Enabled())
	assert.Equal(t, "cache:6379", conf.Redis.Addr())
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "bad yaml", path: writeConfig(t, "jwt: [")},
		{name: "no secret", path: writeConfig(t, "app:\n  env: prod\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	d := &Database{Host: "localhost", Username: "root", Password: "pw", Database: "scribe"}
	d.applyDefaults()

	assert.Equal(t, "root:pw@tcp(localhost:3306)/scribe?charset=utf8mb4&parseTime=True&loc=Local", d.DSN())
}
