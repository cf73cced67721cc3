package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/pitwall-cli/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// F1 sources, joined with DataDir unless absolute.
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	DriversFile string `mapstructure:"drivers_file" yaml:"drivers_file"`
	ResultsFile string `mapstructure:"results_file" yaml:"results_file"`
	RacesFile   string `mapstructure:"races_file" yaml:"races_file"`
	ImagesDir   string `mapstructure:"images_dir" yaml:"images_dir"`

	// Generic viewer
	ViewerFile    string `mapstructure:"viewer_file" yaml:"viewer_file"`
	ViewerMaxRows int    `mapstructure:"viewer_max_rows" yaml:"viewer_max_rows"`

	// Comparison histogram bin count.
	HistogramBins int `mapstructure:"histogram_bins" yaml:"histogram_bins"`

	// HTTP dashboard
	Addr        string `mapstructure:"addr" yaml:"addr"`
	MaxSessions int    `mapstructure:"max_sessions" yaml:"max_sessions"`
	MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`

	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	BundlesDir string `mapstructure:"bundles_dir" yaml:"bundles_dir"`
}

// Path resolves name against DataDir. Absolute names are returned unchanged.
func (g *Global) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || g.DataDir == "" {
		return name
	}
	return filepath.Join(g.DataDir, name)
}

// defaultDir returns ~/.pitwall.
func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".pitwall"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.pitwall/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. CLI flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PITWALL")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data")
	v.SetDefault("drivers_file", "drivers.csv")
	v.SetDefault("results_file", "results.csv")
	v.SetDefault("races_file", "races.csv")
	v.SetDefault("images_dir", "images")
	v.SetDefault("viewer_file", "races.csv")
	v.SetDefault("viewer_max_rows", 50)
	v.SetDefault("histogram_bins", 20)
	v.SetDefault("addr", ":8501")
	v.SetDefault("max_sessions", 256)
	v.SetDefault("max_upload_mb", 32)
	v.SetDefault("log_level", "info")
	v.SetDefault("bundles_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.BundlesDir == "" {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		c.BundlesDir = filepath.Join(dir, "bundles")
	}
	expanded, err := utils.ExpandHome(c.BundlesDir)
	if err != nil {
		return nil, err
	}
	c.BundlesDir = expanded
	if c.HistogramBins <= 0 {
		return nil, fmt.Errorf("histogram_bins must be positive, got %d", c.HistogramBins)
	}
	return &c, nil
}
