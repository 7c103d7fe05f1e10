package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Store.HistoryCap)
	assert.Equal(t, 20, cfg.Export.TimeoutSeconds)
	assert.NotEmpty(t, cfg.Preview.Proxies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EXPORT_TIMEOUT_SECONDS", "5")
	t.Setenv("PREVIEW_PROXIES", "https://a.example/?%s, https://b.example/?%s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Export.TimeoutSeconds)
	assert.Equal(t, []string{"https://a.example/?%s", "https://b.example/?%s"}, cfg.Preview.Proxies)
}

// A malformed integer env value keeps the default instead of collapsing to 0;
// a zero export timeout would make every export an instant fallback.
func TestLoad_MalformedIntKeepsDefault(t *testing.T) {
	t.Setenv("EXPORT_TIMEOUT_SECONDS", "20s")
	t.Setenv("HTTP_PORT", "eight thousand")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Export.TimeoutSeconds)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}
