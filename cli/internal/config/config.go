// Package config loads tsgen configuration from config files, environment
// variables and .env files.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem the CLI reads and writes through.
var AppFs = afero.NewOsFs()

// Config holds the resolved CLI configuration.
type Config struct {
	SchemaPath string
	OutputPath string
	Debug      bool
}

// Load resolves configuration from, in increasing priority: defaults, a
// .tsgen.yaml config file (working directory, home directory, or
// ~/.config/tsgen), TSGEN_* environment variables. .env and .env.local
// files are loaded into the environment when present.
//
// OutputPath deliberately has no default: an output destination must be
// configured explicitly somewhere, and generation refuses to start without
// one.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".tsgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "tsgen"))

	viper.SetEnvPrefix("TSGEN")
	viper.AutomaticEnv()

	viper.SetDefault("schema_path", "schema.prisma")
	viper.SetDefault("debug", false)

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	if os.Getenv("TSGEN_DEBUG") != "" {
		viper.Set("debug", true)
	}

	return &Config{
		SchemaPath: viper.GetString("schema_path"),
		OutputPath: viper.GetString("output_path"),
		Debug:      viper.GetBool("debug"),
	}, nil
}

// Save writes the configuration to ~/.config/tsgen/.tsgen.yaml.
func Save(cfg *Config) error {
	viper.Set("schema_path", cfg.SchemaPath)
	viper.Set("output_path", cfg.OutputPath)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "tsgen")
	if err := AppFs.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configDir, ".tsgen.yaml"))
}
