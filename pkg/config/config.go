// Package config loads pcgen tool settings from config files and the
// environment. Per-library metadata lives in pkg/capi; this package only
// covers the tool-level knobs (install layout defaults, output directory).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for pcgen
type Config struct {
	Install InstallConfig `mapstructure:"install"`
	Output  OutputConfig  `mapstructure:"output"`
}

// InstallConfig holds default install-layout settings. Command-line flags
// take precedence over these.
type InstallConfig struct {
	Prefix     string `mapstructure:"prefix"`
	IncludeDir string `mapstructure:"includedir"`
	LibDir     string `mapstructure:"libdir"`
}

// OutputConfig holds output settings for generated .pc files
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
}

var defaultConfig = Config{
	Install: InstallConfig{
		Prefix: "/usr/local",
	},
	Output: OutputConfig{
		Directory: ".",
	},
}

// LoadConfig loads configuration from defaults, an optional .pcgen config
// file, and PCGEN_* environment variables, in increasing precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("install.prefix", defaultConfig.Install.Prefix)
	v.SetDefault("install.includedir", defaultConfig.Install.IncludeDir)
	v.SetDefault("install.libdir", defaultConfig.Install.LibDir)
	v.SetDefault("output.directory", defaultConfig.Output.Directory)

	v.SetConfigName(".pcgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("PCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; defaults and env cover the rest
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}
