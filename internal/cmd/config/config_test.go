package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/djangodev/cli/internal/cmdtypes"
	"github.com/djangodev/cli/internal/config"
)

func runConfig(t *testing.T, gc *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(gc)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()
	gc := &cmdtypes.GlobalConfig{Fs: fs, ConfigPath: "/work/djdev.yaml"}

	out, err := runConfig(t, gc, "init")

	require.NoError(t, err)
	assert.Contains(t, out, "/work/djdev.yaml")

	data, err := afero.ReadFile(fs, "/work/djdev.yaml")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *config.DefaultConfig(), cfg)
}

func TestInit_ExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/djdev.yaml", []byte("python: python2\n"), 0o644))
	gc := &cmdtypes.GlobalConfig{Fs: fs, ConfigPath: "/work/djdev.yaml"}

	_, err := runConfig(t, gc, "init")

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitGeneralError, exitErr.Code)

	_, err = runConfig(t, gc, "init", "--force")
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/work/djdev.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "python: python3")
}

func TestShow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AppsDir = "src"
	gc := &cmdtypes.GlobalConfig{Config: cfg, ConfigPath: "/work/djdev.yaml"}

	out, err := runConfig(t, gc, "show")

	require.NoError(t, err)
	assert.Contains(t, out, "# /work/djdev.yaml")
	assert.Contains(t, out, "appsDir: src")
	assert.Contains(t, out, "defaultVersion: \"1.7\"")
}
