package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Database  *Database  `json:"database" yaml:"database"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	LLM       *LLM       `json:"llm" yaml:"llm"`
	RateLimit *RateLimit `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	Http            int           `json:"http" yaml:"http"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type Jwt struct {
	Secret string        `json:"secret" yaml:"secret"`
	Expire time.Duration `json:"expire" yaml:"expire"`
}

type RateLimit struct {
	// GeneratePerMinute caps AI generation requests per user; 0 disables the limit.
	GeneratePerMinute int `json:"generate_per_minute" yaml:"generate_per_minute"`
}

// Load reads a yaml config file, applies environment overrides and defaults.
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	conf.applyEnv()
	conf.applyDefaults()

	if conf.Jwt.Secret == "" {
		return nil, fmt.Errorf("config %s: jwt.secret is required", filename)
	}

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// applyEnv lets deployments inject secrets without writing them to the file.
func (c *Config) applyEnv() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.LLM == nil {
		c.LLM = &LLM{}
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		if c.Redis == nil {
			c.Redis = &Redis{}
		}
		c.Redis.Address = v
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			c.LLM.APIKey = v
		}
	default:
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			c.LLM.APIKey = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8787
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	c.Database.applyDefaults()
	c.LLM.applyDefaults()
}
