package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PHONIX_DB", "PHONIX_WORDS", "PHONIX_LOG_LEVEL", "PHONIX_DAILY_GOAL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
daily_goal: 15
voice_speed: 1.0
sfx_enabled: false
refill_delay: 5s
words_file: /tmp/words.json
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.DailyGoal)
	assert.Equal(t, 1.0, cfg.VoiceSpeed)
	assert.False(t, cfg.SFXEnabled)
	assert.True(t, cfg.Autoplay, "unset fields keep defaults")
	assert.Equal(t, 5*time.Second, cfg.RefillDelay)
	assert.Equal(t, "/tmp/words.json", cfg.WordsFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daily_goal: 15\ndb_path: a.db\n"), 0o644))

	t.Setenv("PHONIX_DAILY_GOAL", "20")
	t.Setenv("PHONIX_DB", "b.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.DailyGoal)
	assert.Equal(t, "b.db", cfg.DBPath)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("daily_goal: [1, 2"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("daily_goal: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "daily_goal")

	t.Setenv("PHONIX_DAILY_GOAL", "lots")
	_, err = Load(filepath.Join(dir, "none.yaml"))
	assert.ErrorContains(t, err, "PHONIX_DAILY_GOAL")
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DailyGoal = 12
	cfg.RecognitionTimeout = 6 * time.Second
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "phonix", "config.yaml"), got)
}
