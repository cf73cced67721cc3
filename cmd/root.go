package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/pitwall-cli/internal/config"
	"github.com/KaramelBytes/pitwall-cli/internal/logger"
)

var (
	// Global flags
	cfgFile      string
	debug        bool
	flagDataDir  string
	flagLogLevel string
	flagJSON     bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "pitwall",
	Short: "Pitwall: F1 career dashboard and table viewer",
	Long: `Pitwall loads the Ergast-style drivers, results and races CSVs and reports
career trends, driver profiles and head-to-head comparisons, either on the
command line or through a small HTTP dashboard. It also previews any CSV, TSV
or XLSX table.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return loadConfig(cmd) },
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ~/.pitwall/config.yaml)")
	f.BoolVar(&debug, "debug", false, "enable debug logging")
	f.StringVar(&flagDataDir, "data-dir", "", "directory holding drivers/results/races CSVs (overrides config)")
	f.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	f.BoolVar(&flagJSON, "json", false, "print indented JSON instead of a markdown report")
}

func loadConfig(cmd *cobra.Command) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	// Apply CLI overrides if provided
	f := cmd.Root().PersistentFlags()
	if f.Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if f.Changed("log-level") && flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	logger.Init(cmd.ErrOrStderr())
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	logger.Get().Debug(cmd.Context(), "config loaded",
		logger.String("data_dir", cfg.DataDir),
		logger.String("bundles_dir", cfg.BundlesDir))
	return nil
}
