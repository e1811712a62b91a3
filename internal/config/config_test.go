package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 9, cfg.MaxSuggestions)
	require.Equal(t, "127.0.0.1:8923", cfg.Listen)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"working_dir": "/var/lib/spellcheck",
		"languages": ["en_US", "ru_RU"],
		"max_suggestions": 5,
		"watch": true,
		"listen": "127.0.0.1:9000",
		"log": {"level": "debug"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/spellcheck", cfg.WorkingDir)
	require.Equal(t, []string{"en_US", "ru_RU"}, cfg.Languages)
	require.Equal(t, 5, cfg.MaxSuggestions)
	require.True(t, cfg.Watch)
	require.Equal(t, "127.0.0.1:9000", cfg.Listen)
	require.Equal(t, "debug", cfg.Log.Level)

	// Fields absent from the file keep their defaults.
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen": "127.0.0.1:9000"}`), 0o644))

	t.Setenv("SPELLCHECK_LISTEN", "127.0.0.1:9001")
	t.Setenv("SPELLCHECK_LANGUAGES", "en_US,de_DE")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9001", cfg.Listen)
	require.Equal(t, []string{"en_US", "de_DE"}, cfg.Languages)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SPELLCHECK_WORKING_DIR", "/tmp/dicts")
	t.Setenv("SPELLCHECK_MAX_SUGGESTIONS", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "/tmp/dicts", cfg.WorkingDir)
	require.Equal(t, 3, cfg.MaxSuggestions)
	require.Equal(t, "127.0.0.1:8923", cfg.Listen)
}
