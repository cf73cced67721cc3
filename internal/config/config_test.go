package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "drivers.csv", c.DriversFile)
	assert.Equal(t, 20, c.HistogramBins)
	assert.Equal(t, ":8501", c.Addr)
	assert.Equal(t, filepath.Join(home, ".pitwall", "bundles"), c.BundlesDir)
	assert.Equal(t, filepath.Join("data", "results.csv"), c.Path(c.ResultsFile))
	assert.Equal(t, "/srv/f1/races.csv", c.Path("/srv/f1/races.csv"))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgPath := filepath.Join(home, "pitwall.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dir: /srv/f1\nhistogram_bins: 10\naddr: \":9000\"\n"), 0o644))
	t.Setenv("PITWALL_ADDR", ":7000")

	c, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/f1", c.DataDir)
	assert.Equal(t, 10, c.HistogramBins)
	assert.Equal(t, ":7000", c.Addr)
}

func TestLoadRejectsNonPositiveBins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgPath := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("histogram_bins: 0\n"), 0o644))

	_, err := Load(cfgPath)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	c, err := Load("")
	require.NoError(t, err)
	c.ImagesDir = "/srv/portraits"

	out := filepath.Join(home, "saved.yaml")
	require.NoError(t, Save(c, out))

	again, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "/srv/portraits", again.ImagesDir)
}
