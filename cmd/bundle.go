package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/pitwall-cli/internal/bundle"
	"github.com/KaramelBytes/pitwall-cli/internal/f1"
)

var (
	bundleDescription string
	bundleDrivers     string
	bundleResults     string
	bundleRaces       string
	bundleImages      string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Manage saved sets of F1 source files",
}

var bundleInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Save a named set of drivers/results/races paths",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := bundle.ValidateName(name); err != nil {
			return err
		}
		dir := filepath.Join(cfg.BundlesDir, name)
		b, err := bundle.New(name, bundleDescription, dir, f1.Sources{
			Drivers: bundleDrivers,
			Results: bundleResults,
			Races:   bundleRaces,
		}, bundleImages)
		if err != nil {
			return err
		}
		if err := b.Create(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Bundle saved: %s\n", dir)
		return nil
	},
}

var bundleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := bundle.List(cfg.BundlesDir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if flagJSON {
			return render(cmd, names, "")
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "(no bundles)")
			return nil
		}
		for _, n := range names {
			fmt.Fprintf(out, "- %s\n", n)
		}
		return nil
	},
}

var bundleShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle(args[0])
		if err != nil {
			return err
		}
		text, err := b.YAML()
		if err != nil {
			return err
		}
		return render(cmd, b, text)
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
	bundleCmd.AddCommand(bundleInitCmd, bundleListCmd, bundleShowCmd)
	f := bundleInitCmd.Flags()
	f.StringVarP(&bundleDescription, "desc", "d", "", "bundle description")
	f.StringVar(&bundleDrivers, "drivers", "", "path to drivers.csv")
	f.StringVar(&bundleResults, "results", "", "path to results.csv")
	f.StringVar(&bundleRaces, "races", "", "path to races.csv")
	f.StringVar(&bundleImages, "images", "", "directory with driver portraits")
	for _, name := range []string{"drivers", "results", "races"} {
		_ = bundleInitCmd.MarkFlagRequired(name)
	}
}
