package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.DailySalt)
	assert.False(t, cfg.BannerEveryFrame)
	assert.True(t, cfg.ClearScreen)
	assert.True(t, cfg.Replay)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WORDS_PACK_FILE", "/tmp/pack.yaml")
	t.Setenv("HANGMAN_DAILY_SALT", "pepper")
	t.Setenv("HANGMAN_CLEAR_SCREEN", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/pack.yaml", cfg.WordsPackFile)
	assert.Equal(t, "pepper", cfg.DailySalt)
	assert.False(t, cfg.ClearScreen)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HANGMAN_REPLAY=false\nWORDS_HARD_FILE=hard.txt\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("HANGMAN_REPLAY")
		os.Unsetenv("WORDS_HARD_FILE")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Replay)
	assert.Equal(t, "hard.txt", cfg.WordsHardFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HANGMAN_REPLAY", "maybe")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"console", Config{LogFormat: "console"}, false},
		{"json", Config{LogFormat: "json"}, false},
		{"xml", Config{LogFormat: "xml"}, true},
		{"empty", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
