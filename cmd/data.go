package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/pitwall-cli/internal/bundle"
	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
	"github.com/KaramelBytes/pitwall-cli/internal/utils"
)

// flagBundle selects a saved bundle for every F1 command.
var flagBundle string

func addBundleFlag(c *cobra.Command) {
	c.Flags().StringVarP(&flagBundle, "bundle", "b", "", "use the source paths of a saved bundle")
}

// f1Sources returns the CSV paths and the portrait directory, taken from
// --bundle when set and from config otherwise.
func f1Sources() (f1.Sources, string, error) {
	if flagBundle != "" {
		b, err := loadBundle(flagBundle)
		if err != nil {
			return f1.Sources{}, "", err
		}
		return b.Sources(), b.ImagesDir, nil
	}
	return f1.Sources{
		Drivers: cfg.Path(cfg.DriversFile),
		Results: cfg.Path(cfg.ResultsFile),
		Races:   cfg.Path(cfg.RacesFile),
	}, cfg.Path(cfg.ImagesDir), nil
}

func loadBundle(name string) (*bundle.Bundle, error) {
	if err := bundle.ValidateName(name); err != nil {
		return nil, err
	}
	return bundle.Load(filepath.Join(cfg.BundlesDir, name))
}

// loadDataset loads the selected sources for one command invocation.
func loadDataset(cmd *cobra.Command) (*f1.Dataset, *f1.PortraitFinder, error) {
	src, images, err := f1Sources()
	if err != nil {
		return nil, nil, err
	}
	ds, err := f1.Load(cmd.Context(), src)
	if err != nil {
		return nil, nil, warnData(cmd, err)
	}
	return ds, f1.NewPortraitFinder(images), nil
}

// warnData prints a recoverable warning for missing data and passes err on.
func warnData(cmd *cobra.Command, err error) error {
	if errors.Is(err, f1.ErrDataUnavailable) || errors.Is(err, sheet.ErrDataUnavailable) {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %v\n  Supply the data with --data-dir, --bundle, or a file argument.\n", err)
	}
	return err
}

// render prints v as JSON when --json is set, else the markdown report.
func render(cmd *cobra.Command, v any, markdown string) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	_, err := fmt.Fprint(out, markdown)
	return err
}
