package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 2*time.Second, c.NavigateDelay)
	assert.Equal(t, time.Second, c.ModalCloseDelay)
	assert.Equal(t, "download", c.DownloadDir)
	assert.Equal(t, "filebox.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5000", cfg.ServerBaseURL)
	assert.Equal(t, 2*time.Second, cfg.NavigateDelay)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("FILEBOX_SERVER_URL", "https://files.example.org")
	t.Setenv("FILEBOX_REQUEST_TIMEOUT", "5s")
	t.Setenv("FILEBOX_DOWNLOAD_DIR", "/tmp/dl")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://files.example.org", c.ServerBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/dl", c.DownloadDir)
	assert.Equal(t, "filebox.db", c.DatabasePath, "untouched fields keep defaults")
}

func TestParseEnv_MalformedTimeoutIgnored(t *testing.T) {
	t.Setenv("FILEBOX_REQUEST_TIMEOUT", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}
