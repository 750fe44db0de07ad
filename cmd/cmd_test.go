package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against a scratch config and
// database.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PHONIX_DB", "")
	t.Setenv("XDG_STATE_HOME", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "phonix.db"),
	}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWords_FilterByGroup(t *testing.T) {
	out, err := execute(t, "words", "--group", "short-a")
	require.NoError(t, err)
	assert.Contains(t, out, "cat")
	assert.Contains(t, out, "c-a-t")
	assert.NotContains(t, out, "ship")
}

func TestWords_UnknownGroup(t *testing.T) {
	_, err := execute(t, "words", "--group", "nope")
	assert.ErrorContains(t, err, "nope")
}

func TestStats_FreshInstall(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "short-a")
}

func TestStages_FirstStageIsNext(t *testing.T) {
	out, err := execute(t, "stages")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.Contains(t, lines[2], "stage-1")
	assert.Contains(t, lines[2], "next")
	assert.Contains(t, out, "locked")
}

func TestExport_HeaderOnly(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Word,Attempts,Correct,Accuracy,Last Seen"))
}

func TestConfigInit_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phonix", "config.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "daily_goal: 10")

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	assert.ErrorContains(t, rootCmd.ExecuteContext(context.Background()), "already exists")
}

func TestPlay_RejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "play", "--mode", "juggle")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "phonix (devel)\n", out)
}
