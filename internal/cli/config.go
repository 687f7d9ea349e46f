package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"programador/internal/client"
)

const (
	keyAPIURL = "api_url"
	keyHome   = "home"
)

// Config is the CLI configuration after merging flags, env and config file.
type Config struct {
	APIURL string `mapstructure:"api_url"`
	Home   string `mapstructure:"home"`
}

// defaultHome is ~/.programador, or ./.programador when no home is known.
func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".programador"
	}
	return filepath.Join(home, ".programador")
}

// loadConfig resolves configuration with precedence flag > env > file > default.
// The optional file is <home>/config.yaml.
func loadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	v := viper.New()

	v.SetDefault(keyAPIURL, client.DefaultBaseURL)
	v.SetDefault(keyHome, defaultHome())

	v.SetEnvPrefix("PROGRAMADOR")
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("api-url"); f != nil {
		if err := v.BindPFlag(keyAPIURL, f); err != nil {
			return cfg, err
		}
	}
	if f := cmd.Flags().Lookup("home"); f != nil {
		if err := v.BindPFlag(keyHome, f); err != nil {
			return cfg, err
		}
	}

	// A home that is not a directory is reported by the token cache.
	configFile := filepath.Join(v.GetString(keyHome), "config.yaml")
	if info, err := os.Stat(configFile); err == nil && info.Mode().IsRegular() {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
