package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	config "github.com/inference-gateway/keybinds/config"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestInitConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".keybinds", "config.yaml")

	var out bytes.Buffer
	require.NoError(t, initConfigFile(&out, configPath, false))
	assert.Contains(t, out.String(), "Successfully created")

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, *config.DefaultConfig(), *cfg)

	err = initConfigFile(&out, configPath, false)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(configPath, []byte("storage:\n  type: memory\n"), 0644))
	require.NoError(t, initConfigFile(&out, configPath, true))

	cfg, err = config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Type)
}

func TestWriteConfig(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeConfig(&out, config.DefaultConfig()))

	text := out.String()
	assert.Contains(t, text, "storage:\n  type: file\n")
	assert.Contains(t, text, "storage_key: keybindings")
	assert.Contains(t, text, "legacy_labels: true")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "keybinds version "+version)
}
