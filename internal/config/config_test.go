package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, c.MinSupport)
	assert.Equal(t, 0.7, c.MinConfidence)
	assert.Equal(t, 3, c.MaxLen)
	assert.Equal(t, "mushroom", c.Codebook)
	assert.Equal(t, "poisonous", c.TargetColumn)
	assert.True(t, c.DropConstant)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, filepath.Join(home, ".arules", "data", "mushrooms_raw.csv"), c.CachePath)
	require.NoError(t, c.Mining().Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "arules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_support: 0.4\nmax_len: 2\ncodebook: none\n"), 0o644))
	t.Setenv("ARULES_MIN_CONFIDENCE", "0.9")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, c.MinSupport)
	assert.Equal(t, 2, c.MaxLen)
	assert.Equal(t, "none", c.Codebook)
	assert.Equal(t, 0.9, c.MinConfidence)

	m := c.Mining()
	assert.Equal(t, 0.4, m.MinSupport)
	assert.Equal(t, 0.9, m.MinConfidence)
	assert.Equal(t, 2, m.MaxLen)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	c.MinLift = 1.2
	c.Workers = 4
	require.NoError(t, Save(c, ""))

	_, err = os.Stat(filepath.Join(home, ".arules", "config.yaml"))
	require.NoError(t, err)

	again, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.2, again.MinLift)
	assert.Equal(t, 4, again.Workers)
}
