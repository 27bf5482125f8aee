// Package config loads CLI settings.
//
// Precedence (highest to lowest): explicitly set flags > AOC_* environment
// variables > aoc.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix namespaces environment overrides, e.g. AOC_INPUT_DIR.
const EnvPrefix = "AOC_"

// Defaults.
const (
	DefaultInputDir = "."
	DefaultLogLevel = "warn"
	DefaultOutput   = "text"
	DefaultParallel = 4
)

// Outputs lists the accepted output formats.
var Outputs = []string{"text", "table", "json", "yaml"}

// configNames are looked up in the working directory when no file is given.
var configNames = []string{"aoc.yaml", "aoc.yml"}

// Config holds every setting the commands read.
type Config struct {
	Home     string `koanf:"home"`      // answer store directory
	InputDir string `koanf:"input_dir"` // where dayNN.txt inputs live
	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`
	Output   string `koanf:"output"`
	Parallel int    `koanf:"parallel"` // days solved at once by "all"
}

// keys are the config keys flags may override.
var keys = []string{"home", "input_dir", "log_level", "log_file", "output", "parallel"}

// DefaultHome returns ~/.aoc, or .aoc when the home directory is unknown.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return ".aoc"
	}
	return filepath.Join(dir, ".aoc")
}

// Load reads configuration from defaults, cfgFile (or aoc.yaml in the working
// directory), the environment and flags. It returns the config file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"home":      DefaultHome(),
		"input_dir": DefaultInputDir,
		"log_level": DefaultLogLevel,
		"log_file":  "",
		"output":    DefaultOutput,
		"parallel":  DefaultParallel,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !slices.Contains(keys, key) {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Outputs, c.Output) {
		errs = append(errs, fmt.Errorf("output %q must be one of %s", c.Output, strings.Join(Outputs, ", ")))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel must be at least 1, got %d", c.Parallel))
	}
	if c.Home == "" {
		errs = append(errs, errors.New("home must not be empty"))
	}
	if c.InputDir == "" {
		errs = append(errs, errors.New("input_dir must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// findConfigFile returns the explicit path, which must exist, or the first
// default name present in the working directory.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}
