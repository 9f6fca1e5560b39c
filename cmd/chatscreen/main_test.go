package main

import (
	"os"
	"path/filepath"
	"testing"

	"chatscreen/internal/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config lookup at an empty directory and clears the
// overrides these tests rely on.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"CHATSCREEN_PLATFORM", "CHATSCREEN_LOCALE", "CHATSCREEN_TIMEZONE", "CHATSCREEN_REJECT_BLANK", "CHATSCREEN_LOG_LEVEL", "CHATSCREEN_MOUSE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: FromFile\nlocale: de\n"), 0o644))
	t.Setenv("CHATSCREEN_PLATFORM", "FromEnv")

	cmd, f := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", path,
		"--platform", "FromFlag",
		"--reject-blank",
		"--timezone", "UTC",
		"-v",
		"--no-mouse",
	}))

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, "FromFlag", cfg.Platform)
	assert.Equal(t, "de", cfg.Locale, "file value kept when flag unset")
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, chat.PolicyRejectBlank, cfg.SendPolicy())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Mouse)
}

func TestLoadConfig_EnvWhenNoFlag(t *testing.T) {
	isolate(t)
	t.Setenv("CHATSCREEN_PLATFORM", "FromEnv")

	cmd, f := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.Platform)
	assert.Equal(t, chat.PolicyAllowEmpty, cfg.SendPolicy())
	assert.True(t, cfg.Mouse)
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	isolate(t)

	cmd, f := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--timezone", "Nowhere/Atlantis"}))

	_, err := loadConfig(cmd, f)
	assert.ErrorContains(t, err, "timezone")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	cmd, f := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(dir, "absent.yaml")}))

	_, err := loadConfig(cmd, f)
	assert.Error(t, err)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	assert.Error(t, cmd.Execute())
}
