package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/pitwall-cli/internal/bundle"
	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/f1/f1test"
)

// resetFlags clears values and Changed state that persist across Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = nil
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, err := execute(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, errOut)
	}
	return out
}

// isolate points HOME at a temp dir and writes the fixture CSVs to a data dir.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()
	f1test.Write(t, dataDir)
	return dataDir
}

func TestCLI_Drivers(t *testing.T) {
	data := isolate(t)
	out := runCmd(t, "drivers", "--data-dir", data)
	assert.Contains(t, out, "[DRIVERS]")
	assert.Contains(t, out, "- 1: Lewis Hamilton [HAM] (British)")
	assert.NotContains(t, out, "No Results")
}

func TestCLI_DriverJSON(t *testing.T) {
	data := isolate(t)
	out := runCmd(t, "driver", "hamilton", "--data-dir", data, "--json")
	var p f1.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 43.0, p.TotalPoints)
	assert.Equal(t, []f1.SeasonPoints{{Year: 2020, Points: 43}, {Year: 2021, Points: 0}}, p.Seasons)
}

func TestCLI_DriverAmbiguous(t *testing.T) {
	data := isolate(t)
	_, _, err := execute(t, "driver", "schumacher", "--data-dir", data)
	require.ErrorIs(t, err, f1.ErrAmbiguousDriver)
}

func TestCLI_Trends(t *testing.T) {
	data := isolate(t)
	out := runCmd(t, "trends", "--mode", "grid-finish", "--data-dir", data)
	assert.Contains(t, out, "[CAREER TRENDS]")
	assert.Contains(t, out, "Pairs: 7")

	out = runCmd(t, "trends", "--data-dir", data)
	assert.Contains(t, out, "Mode: nationality")
	assert.Contains(t, out, "- German (n=4)")

	_, _, err := execute(t, "trends", "-m", "circuit", "--data-dir", data)
	require.ErrorIs(t, err, f1.ErrUnknownMode)
}

func TestCLI_Compare(t *testing.T) {
	data := isolate(t)
	out := runCmd(t, "compare", "hamilton", "vettel", "--bins", "10", "--data-dir", data, "--json")
	var c f1.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Len(t, c.Edges, 11)
	assert.Equal(t, 3, c.B.Podiums)

	out = runCmd(t, "compare", "hamilton", "vettel", "--data-dir", data)
	assert.Contains(t, out, "[FINISH HISTOGRAM] (20 shared bins)")
}

func TestCLI_CompareSameDriverWarns(t *testing.T) {
	data := isolate(t)
	out, errOut, err := execute(t, "compare", "hamilton", "HAM", "--data-dir", data)
	require.ErrorIs(t, err, f1.ErrSameDriver)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "pick two different drivers")
}

func TestCLI_MissingDataWarns(t *testing.T) {
	isolate(t)
	empty := t.TempDir()
	_, errOut, err := execute(t, "drivers", "--data-dir", empty)
	require.ErrorIs(t, err, f1.ErrDataUnavailable)
	assert.Contains(t, errOut, "⚠ Warning")
	assert.Contains(t, errOut, "--data-dir")
}

func TestCLI_View(t *testing.T) {
	data := isolate(t)
	laps := filepath.Join(t.TempDir(), "laps.csv")
	require.NoError(t, os.WriteFile(laps, []byte("lap,seconds\n1,91.2\n2,90.8\n3,90.5\n"), 0o644))

	out := runCmd(t, "view", laps, "--max-rows", "1")
	assert.Contains(t, out, "[DATA TABLE]")
	assert.Contains(t, out, "Rows: 3 (showing 1)")
	assert.Contains(t, out, "[LINE CHART]")

	// Without an argument the configured viewer_file (races.csv) is used.
	out = runCmd(t, "view", "--data-dir", data)
	assert.Contains(t, out, "File: races.csv")

	_, errOut, err := execute(t, "view", filepath.Join(t.TempDir(), "gone.csv"))
	require.Error(t, err)
	assert.Contains(t, errOut, "⚠ Warning")
}

func TestCLI_ViewHelpDescribesChart(t *testing.T) {
	isolate(t)
	out := runCmd(t, "view", "--help")
	assert.Contains(t, out, "first two columns against the row index")
}

func TestCLI_BundleLifecycle(t *testing.T) {
	data := isolate(t)
	src := []string{
		"--drivers", filepath.Join(data, "drivers.csv"),
		"--results", filepath.Join(data, "results.csv"),
		"--races", filepath.Join(data, "races.csv"),
	}

	out := runCmd(t, append([]string{"bundle", "init", "season", "-d", "fixture"}, src...)...)
	assert.Contains(t, out, "✓ Bundle saved")

	_, _, err := execute(t, append([]string{"bundle", "init", "season"}, src...)...)
	require.ErrorIs(t, err, bundle.ErrExists)

	assert.Equal(t, "- season\n", runCmd(t, "bundle", "list"))
	assert.Contains(t, runCmd(t, "bundle", "show", "season"), "description: fixture")

	// The bundle's paths win over a data dir that has no CSVs.
	out = runCmd(t, "drivers", "--bundle", "season", "--data-dir", t.TempDir())
	assert.Contains(t, out, "Sebastian Vettel")

	_, _, err = execute(t, "drivers", "--bundle", "nope")
	require.ErrorIs(t, err, bundle.ErrNotFound)
}

func TestCLI_ConfigSetShow(t *testing.T) {
	isolate(t)
	assert.Equal(t, "Saved config\n", runCmd(t, "config", "set", "histogram_bins", "5"))
	assert.Contains(t, runCmd(t, "config", "show"), "histogram_bins: 5")

	_, _, err := execute(t, "config", "set", "histogram_bins", "0")
	require.Error(t, err)
	_, _, err = execute(t, "config", "set", "nope", "1")
	require.Error(t, err)
}
