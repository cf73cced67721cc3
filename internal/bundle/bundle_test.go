package bundle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/pitwall-cli/internal/bundle"
	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/f1/f1test"
)

func TestCreateLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	src := f1test.Write(t, t.TempDir())
	dir := filepath.Join(root, "season")

	b, err := bundle.New("season", " 2020-2021 ", dir, src, "")
	require.NoError(t, err)
	require.NoError(t, b.Create())

	got, err := bundle.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "2020-2021", got.Description)
	assert.Equal(t, src, got.Sources())
	assert.Equal(t, dir, got.RootDir())

	ds, err := f1.Load(context.Background(), got.Sources())
	require.NoError(t, err)
	assert.Equal(t, f1test.JoinedRecords, ds.Stats().Records)
}

func TestCreateRefusesOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dup")
	src := f1test.Write(t, t.TempDir())

	first, err := bundle.New("dup", "", dir, src, "")
	require.NoError(t, err)
	require.NoError(t, first.Create())

	second, err := bundle.New("dup", "", dir, src, "")
	require.NoError(t, err)
	require.ErrorIs(t, second.Create(), bundle.ErrExists)

	kept, err := bundle.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
}

func TestNewStoresAbsolutePaths(t *testing.T) {
	wd := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	b, err := bundle.New("rel", "", filepath.Join(wd, "b"), f1.Sources{
		Drivers: "d.csv", Results: "r.csv", Races: "ra.csv",
	}, "img")
	require.NoError(t, err)
	for _, p := range []string{b.Drivers, b.Results, b.Races, b.ImagesDir} {
		assert.True(t, filepath.IsAbs(p), p)
	}
}

func TestNewValidates(t *testing.T) {
	src := f1.Sources{Drivers: "/d", Results: "/r", Races: "/ra"}
	for _, name := range []string{"", "a/b", ".."} {
		_, err := bundle.New(name, "", t.TempDir(), src, "")
		assert.Error(t, err, name)
	}
	_, err := bundle.New("ok", "", t.TempDir(), f1.Sources{Drivers: "/d"}, "")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	root := t.TempDir()
	src := f1test.Write(t, t.TempDir())
	for _, name := range []string{"zeta", "alpha"} {
		b, err := bundle.New(name, "", filepath.Join(root, name), src, "")
		require.NoError(t, err)
		require.NoError(t, b.Create())
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "stray"), 0o755))

	names, err := bundle.List(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	names, err = bundle.List(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadMissing(t *testing.T) {
	_, err := bundle.Load(t.TempDir())
	require.ErrorIs(t, err, bundle.ErrNotFound)
}

func TestYAML(t *testing.T) {
	src := f1.Sources{Drivers: "/d.csv", Results: "/r.csv", Races: "/ra.csv"}
	b, err := bundle.New("demo", "", t.TempDir(), src, "")
	require.NoError(t, err)
	out, err := b.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "drivers: /d.csv")
	assert.Contains(t, out, "name: demo\n")
}
