package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Database.Path)
	assert.NotEmpty(t, cfg.Export.File)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export.File = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Budget.Default = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swingtrade.yaml")
	data := `
database:
  path: /tmp/trades.db
export:
  file: /tmp/out.csv
budget:
  default: 25000
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/trades.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/out.csv", cfg.Export.File)
	assert.InDelta(t, 25000.0, cfg.Budget.Default, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swingtrade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget:\n  default: 1000\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// unspecified sections keep their defaults
	assert.Equal(t, Default().Database.Path, cfg.Database.Path)
	assert.Equal(t, Default().Export.File, cfg.Export.File)
	assert.InDelta(t, 1000.0, cfg.Budget.Default, 1e-9)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Budget.Default = 42000
	cfg.Logging.Level = "warn"

	path := filepath.Join(t.TempDir(), "swingtrade.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
