package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// AllowOrigins is the CORS allow-list; empty means any origin.
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}
