package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/baseline/pkg/baseline"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig mirrors baseline.yaml.
type FileConfig struct {
	Mode     string `yaml:"mode"`
	TestRoot string `yaml:"test_root,omitempty"`
	Verbose  bool   `yaml:"verbose,omitempty"`
}

// Config is the resolved configuration of a test run.
type Config struct {
	Mode     baseline.Mode
	TestRoot string
	Verbose  bool
}

// Default returns assert mode with the default test root.
func Default() *Config {
	return &Config{
		Mode:     baseline.ModeAssert,
		TestRoot: baseline.DefaultTestRoot,
	}
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	var errs []error

	if c.Mode != baseline.ModeAssert && c.Mode != baseline.ModeGenerate {
		errs = append(errs, fmt.Errorf("mode %s: %w", c.Mode, baseline.ErrInvalidMode))
	}
	if c.TestRoot == "" {
		errs = append(errs, fmt.Errorf("test_root is required: %w", baseline.ErrInvalidConfig))
	} else if strings.ContainsAny(c.TestRoot, `/\`) || c.TestRoot == "." || c.TestRoot == ".." {
		errs = append(errs, fmt.Errorf("test_root %q must be a single directory name: %w", c.TestRoot, baseline.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Load reads baseline.yaml from dir and applies it over the defaults.
// Environment overlays are not applied; see Resolve.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, baseline.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", baseline.ConfigFileName, err)
	}

	cfg := Default()
	if err := cfg.apply(fc.Mode, fc.TestRoot); err != nil {
		return nil, err
	}
	cfg.Verbose = fc.Verbose
	return cfg, nil
}

// Resolve builds the run configuration with precedence
// defaults < baseline.yaml < .env < process environment.
// Both files are optional.
func Resolve(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(filepath.Join(dir, baseline.EnvFileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.overlay(func(key string) (string, bool) {
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", baseline.EnvFileName, err)
	}

	if err := cfg.overlay(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readEnvFile parses a dotenv file without touching the process environment.
// A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

func (c *Config) apply(mode, testRoot string) error {
	if mode != "" {
		m, err := baseline.ParseMode(mode)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if testRoot != "" {
		c.TestRoot = testRoot
	}
	return nil
}

func (c *Config) overlay(lookup func(string) (string, bool)) error {
	mode, _ := lookup(baseline.EnvMode)
	testRoot, _ := lookup(baseline.EnvTestRoot)
	if err := c.apply(mode, testRoot); err != nil {
		return err
	}

	if v, ok := lookup(baseline.EnvRegenerate); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", baseline.EnvRegenerate, v, baseline.ErrInvalidConfig)
		}
		if on {
			c.Mode = baseline.ModeGenerate
		}
	}

	if v, ok := lookup(baseline.EnvVerbose); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", baseline.EnvVerbose, v, baseline.ErrInvalidConfig)
		}
		c.Verbose = on
	}
	return nil
}
