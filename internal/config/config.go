// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/matrix"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all linsys configuration.
type Config struct {
	// Determinant names the strategy used for n ≥ 3: "diagonal" or "laplace".
	Determinant string `yaml:"determinant"`

	// SingularTolerance treats |det| <= tolerance as zero. 0 means exact.
	SingularTolerance float64 `yaml:"singular_tolerance"`

	// StrictDivide turns division by zero into an error instead of ±Inf/NaN.
	StrictDivide bool `yaml:"strict_divide"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Environment overrides.
const (
	EnvDeterminant = "LINSYS_DETERMINANT"
	EnvTolerance   = "LINSYS_SINGULAR_TOLERANCE"
	EnvLogLevel    = "LINSYS_LOG_LEVEL"
)

// DefaultConfig returns the configuration that reproduces the plain console
// program: diagonal rule, exact zero test, IEEE division, quiet logs.
func DefaultConfig() *Config {
	return &Config{
		Determinant:       matrix.DetNameDiagonal,
		SingularTolerance: matrix.DefaultSingularTolerance,
		StrictDivide:      matrix.DefaultStrictDivide,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvDeterminant); v != "" {
		c.Determinant = v
	}
	if v := os.Getenv(EnvTolerance); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTolerance, v, err)
		}
		c.SingularTolerance = tol
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// ValidFormats lists the supported log encodings.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := matrix.DeterminantByName(c.Determinant); err != nil {
		return fmt.Errorf("invalid determinant: %w", err)
	}
	if math.IsNaN(c.SingularTolerance) || math.IsInf(c.SingularTolerance, 0) || c.SingularTolerance < 0 {
		return fmt.Errorf("invalid singular_tolerance %v: %w", c.SingularTolerance, matrix.ErrInvalidTolerance)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}
	format := strings.ToLower(c.Logging.Format)
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}

	return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
}

// MatrixOptions translates the numeric settings into matrix options.
// Call Validate first; invalid settings are reported, never panicked on.
func (c *Config) MatrixOptions() ([]matrix.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	det, _ := matrix.DeterminantByName(c.Determinant)
	opts := []matrix.Option{
		matrix.WithDeterminant(det),
		matrix.WithSingularTolerance(c.SingularTolerance),
	}
	if c.StrictDivide {
		opts = append(opts, matrix.WithStrictDivide())
	}

	return opts, nil
}

// NewLogger builds a zap logger writing to stderr at the configured level;
// verbose forces debug.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = strings.ToLower(c.Logging.Format)
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil

	return zc.Build()
}
