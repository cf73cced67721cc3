package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
)

var (
	trendsMode  string
	compareBins int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Career trends across all drivers",
	Long: `Aggregate point-scoring results by nationality, constructor or year, or
plot grid slot against finishing position (grid-finish).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := f1.ParseTrendMode(trendsMode)
		if err != nil {
			return err
		}
		ds, _, err := loadDataset(cmd)
		if err != nil {
			return err
		}
		v, err := f1.CareerTrends(ds, mode)
		if err != nil {
			return err
		}
		return render(cmd, v, v.Markdown())
	},
}

var driverCmd = &cobra.Command{
	Use:   "driver <query>",
	Short: "Profile one driver (id, ref, \"Forename Surname\", code or surname)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, portraits, err := loadDataset(cmd)
		if err != nil {
			return err
		}
		id, err := ds.Resolve(args[0])
		if err != nil {
			return err
		}
		p, err := f1.BuildProfile(ds, id, portraits)
		if err != nil {
			return err
		}
		return render(cmd, p, p.Markdown())
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <driverA> <driverB>",
	Short: "Compare two drivers side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := loadDataset(cmd)
		if err != nil {
			return err
		}
		a, err := ds.Resolve(args[0])
		if err != nil {
			return err
		}
		b, err := ds.Resolve(args[1])
		if err != nil {
			return err
		}
		bins := cfg.HistogramBins
		if cmd.Flags().Changed("bins") {
			if compareBins <= 0 {
				return fmt.Errorf("--bins must be positive, got %d", compareBins)
			}
			bins = compareBins
		}
		c, err := f1.Compare(ds, a, b, bins)
		if err != nil {
			if errors.Is(err, f1.ErrSameDriver) {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Warning: pick two different drivers to compare.")
			}
			return err
		}
		return render(cmd, c, c.Markdown())
	},
}

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List drivers with at least one race result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := loadDataset(cmd)
		if err != nil {
			return err
		}
		drivers := ds.Drivers()
		return render(cmd, drivers, f1.DriversMarkdown(drivers))
	},
}

func init() {
	for _, c := range []*cobra.Command{trendsCmd, driverCmd, compareCmd, driversCmd} {
		rootCmd.AddCommand(c)
		addBundleFlag(c)
	}
	trendsCmd.Flags().StringVarP(&trendsMode, "mode", "m", string(f1.ModeNationality), "nationality, constructor, year or grid-finish")
	compareCmd.Flags().IntVar(&compareBins, "bins", 0, "finish-position histogram bins (default from config)")
}
