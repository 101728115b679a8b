package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "DB_PATH", "SESSION_SECRET", "CORS_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "./data/timers.db", cfg.DBPath)
	assert.Equal(t, "timers", cfg.MongoDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("TIMERS_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("TIMERS_TEST_INT", 7))
	t.Setenv("TIMERS_TEST_INT", "12")
	assert.Equal(t, 12, getEnvInt("TIMERS_TEST_INT", 7))
}

func TestLoadClient_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SERVER", "http://env.test")
	t.Setenv("TIMERS_TIMEOUT", "3")
	t.Setenv("TIMERS_SESSION_FILE", "/tmp/session")

	cfg, rest, err := LoadClient([]string{"-a", "http://flag.test/", "stop", "abc"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.test", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/session", cfg.SessionFile)
	assert.Equal(t, []string{"stop", "abc"}, rest)
}

func TestLoadClient_DefaultSessionFile(t *testing.T) {
	t.Setenv("SERVER", "")
	t.Setenv("TIMERS_SESSION_FILE", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, rest, err := LoadClient([]string{"status"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, []string{"status"}, rest)
	assert.Equal(t, home, filepath.Dir(cfg.SessionFile))
}

func TestDefaultSessionPath(t *testing.T) {
	assert.Equal(t, filepath.Join("home", ".sb-timers-session"), DefaultSessionPath("home", "linux"))
	assert.Equal(t, filepath.Join("home", "_sb-timers-session"), DefaultSessionPath("home", "windows"))
}
