package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/filebox/internal/flagx"
	"github.com/dmitrijs2005/filebox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "2s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	NavigateDelay   timex.Duration `json:"navigate_delay"`
	ModalCloseDelay timex.Duration `json:"modal_close_delay"`
	DownloadDir     string         `json:"download_dir"`
	DatabasePath    string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given, nothing is loaded. Read or unmarshal errors panic, since a
// config file named explicitly on the command line is expected to be valid.
// Zero-valued fields in the file leave the current Config value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.NavigateDelay.Duration != 0 {
		cfg.NavigateDelay = time.Duration(jc.NavigateDelay.Duration)
	}
	if jc.ModalCloseDelay.Duration != 0 {
		cfg.ModalCloseDelay = time.Duration(jc.ModalCloseDelay.Duration)
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
