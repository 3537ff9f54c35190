package config

import "time"

// Config holds runtime settings for the filebox CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend HTTP API.
//   - RequestTimeout: per-request timeout applied to every API call.
//   - NavigateDelay: pause after a successful auth/account transition,
//     long enough for the user to read the status line.
//   - ModalCloseDelay: pause before an interactive sub-flow closes after
//     submitting.
//   - DownloadDir: directory downloads are saved into.
//   - DatabasePath: location of the local session database.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	NavigateDelay   time.Duration
	ModalCloseDelay time.Duration
	DownloadDir     string
	DatabasePath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 30 * time.Second
	c.NavigateDelay = 2 * time.Second
	c.ModalCloseDelay = time.Second
	c.DownloadDir = "download"
	c.DatabasePath = "filebox.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env), JSON (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
