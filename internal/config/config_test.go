package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
ui:
  command_pane_width: 40
docs:
  command: "tldr --raw"
exec:
  notify: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.UI.CommandPaneWidth)
	assert.True(t, cfg.UI.ShowHints, "unset keys keep their defaults")
	assert.Equal(t, "tldr --raw", cfg.Docs.Command)
	assert.True(t, cfg.Exec.Notify)
	assert.Equal(t, DefaultReturnPrompt, cfg.ReturnPrompt())
}

func TestLoadFromRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "narrow pane", data: "ui:\n  command_pane_width: 3\n"},
		{name: "empty docs command", data: "docs:\n  command: \"\"\n"},
		{name: "malformed yaml", data: "ui: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Exec.ReturnPrompt = "done"

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "done", loaded.ReturnPrompt())
}

func TestReturnPromptFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exec.ReturnPrompt = ""
	assert.Equal(t, DefaultReturnPrompt, cfg.ReturnPrompt())
}
