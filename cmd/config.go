package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/KaramelBytes/pitwall-cli/internal/config"
	"github.com/KaramelBytes/pitwall-cli/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Pitwall configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		if flagJSON {
			return render(cmd, cfg, "")
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		positive := func(dst *int) error {
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for %s: %v", key, val)
			}
			*dst = i
			return nil
		}
		var err error
		switch key {
		case "data_dir":
			cfg.DataDir = val
		case "drivers_file":
			cfg.DriversFile = val
		case "results_file":
			cfg.ResultsFile = val
		case "races_file":
			cfg.RacesFile = val
		case "images_dir":
			cfg.ImagesDir = val
		case "viewer_file":
			cfg.ViewerFile = val
		case "viewer_max_rows":
			i, convErr := strconv.Atoi(val)
			if convErr != nil || i < 0 {
				return fmt.Errorf("invalid int for viewer_max_rows: %v", val)
			}
			cfg.ViewerMaxRows = i
		case "histogram_bins":
			err = positive(&cfg.HistogramBins)
		case "addr":
			cfg.Addr = val
		case "max_sessions":
			err = positive(&cfg.MaxSessions)
		case "max_upload_mb":
			err = positive(&cfg.MaxUploadMB)
		case "log_level":
			if err := logger.SetLevelString(val); err != nil {
				return err
			}
			cfg.LogLevel = val
		case "bundles_dir":
			cfg.BundlesDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
