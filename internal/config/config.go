// Package config loads the hugoup settings from defaults, an optional yaml
// file and HUGOUP_ prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/aexvir/hugoup/binary"
)

const (
	// AppName is the application name.
	AppName = "hugoup"
	// EnvPrefix prefixes the environment variables overriding settings.
	EnvPrefix = "HUGOUP"
	// ConfigFileName is the name of the config file, looked up in [ConfigDir].
	ConfigFileName = "hugoup.yaml"
)

// ExtendedAuto installs the extended build whenever it's available.
const ExtendedAuto = "auto"

// Config holds the user settings.
type Config struct {
	// Dir is tried before any other candidate directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// BundledDir is the last resort candidate directory.
	BundledDir string `mapstructure:"bundled_dir" yaml:"bundled_dir"`
	// ReleaseBase is where releases are downloaded from.
	ReleaseBase string `mapstructure:"release_base" yaml:"release_base"`
	// UseBrew installs through homebrew by default.
	UseBrew bool `mapstructure:"use_brew" yaml:"use_brew"`
	// Extended is "auto", "true" or "false".
	Extended string `mapstructure:"extended" yaml:"extended"`
	// Progress renders a progress bar while downloading on terminals.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ReleaseBase: binary.DefaultReleaseBase,
		Extended:    ExtendedAuto,
		Progress:    true,
	}
}

// LoadOptions customizes where the config file is read from.
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set; it must exist.
	ConfigFilePath string
	// ConfigDirPath replaces [ConfigDir].
	ConfigDirPath string
}

// ConfigDir returns the directory of the config file, following the
// platform conventions of [os.UserConfigDir].
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the configuration, returning it with the path of the config
// file used, empty if none was found.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("dir", defaults.Dir)
	v.SetDefault("bundled_dir", defaults.BundledDir)
	v.SetDefault("release_base", defaults.ReleaseBase)
	v.SetDefault("use_brew", defaults.UseBrew)
	v.SetDefault("extended", defaults.Extended)
	v.SetDefault("progress", defaults.Progress)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			if dir, err = ConfigDir(); err != nil {
				return nil, "", err
			}
		}

		// no config file means defaults
		if path := filepath.Join(dir, ConfigFileName); fileExists(path) {
			resolvedPath = path
		}
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.ExtendedChoice(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// ExtendedChoice maps the Extended setting to a [binary.Extended].
func (c Config) ExtendedChoice() (binary.Extended, error) {
	if c.Extended == "" || strings.EqualFold(c.Extended, ExtendedAuto) {
		return binary.ExtendedDefault, nil
	}

	enabled, err := strconv.ParseBool(c.Extended)
	if err != nil {
		return binary.ExtendedDefault, fmt.Errorf("invalid extended setting %q, expected auto, true or false", c.Extended)
	}

	return binary.ExtendedFrom(enabled), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
