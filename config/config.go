// SPDX-License-Identifier: MIT

// Package config parses and validates the command-line configuration of
// the qpca binary.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/dataset"
	"github.com/katalvlaran/qpca/logger"
	"github.com/katalvlaran/qpca/plots"
)

// Defaults.
const (
	DefaultSamples    = 50
	DefaultComponents = 2
	DefaultDataset    = string(dataset.KindGaussian)
	DefaultFormat     = "svg"
	DefaultLogLevel   = "info"
)

// ErrUsage marks command-line mistakes: unknown flags, bad values, failed validation.
var ErrUsage = fmt.Errorf("%w: usage", qpca.ErrInvalidArgument)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the run configuration.
type Config struct {
	Samples    int
	Components int
	Dataset    string
	Seed       int64
	OutDir     string
	Format     string
	LogLevel   string
	Pretty     bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Samples:    DefaultSamples,
		Components: DefaultComponents,
		Dataset:    DefaultDataset,
		Seed:       dataset.DefaultSeed,
		OutDir:     plots.DefaultDir,
		Format:     DefaultFormat,
		LogLevel:   DefaultLogLevel,
	}
}

// Parse reads args (without the program name) into a validated Config.
// Usage and errors are printed to output. flag.ErrHelp is returned as is.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	kinds := make([]string, 0, len(dataset.Kinds()))
	for _, k := range dataset.Kinds() {
		kinds = append(kinds, string(k))
	}

	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Number of data samples")
	fs.IntVar(&cfg.Components, "components", cfg.Components, "Number of principal components to keep")
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset kind to generate ("+strings.Join(kinds, "|")+")")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for the gaussian dataset")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for rendered charts")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Chart format (svg|png|pdf)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level ("+strings.Join(logLevels, "|")+")")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Human-readable console logs")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(output, "%s: %v\n", name, err)
		fs.Usage()

		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and normalizes the dataset and format names.
func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("%w: --samples must be >= 1, got %d", ErrUsage, c.Samples)
	}
	if c.Components < 1 {
		return fmt.Errorf("%w: --components must be >= 1, got %d", ErrUsage, c.Components)
	}
	kind, err := dataset.ParseKind(c.Dataset)
	if err != nil {
		return fmt.Errorf("%w: --dataset: %w", ErrUsage, err)
	}
	c.Dataset = string(kind)

	pc := c.PlotConfig()
	if err = pc.Validate(); err != nil {
		return fmt.Errorf("%w: --format: %w", ErrUsage, err)
	}
	c.Format = pc.Format

	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if level == l {
			c.LogLevel = level

			return nil
		}
	}

	return fmt.Errorf("%w: --log-level: unknown level %q", ErrUsage, c.LogLevel)
}

// Kind returns the dataset kind. Call after Validate.
func (c *Config) Kind() dataset.Kind { return dataset.Kind(c.Dataset) }

// PlotConfig returns the renderer configuration.
func (c *Config) PlotConfig() plots.Config {
	pc := plots.DefaultConfig()
	pc.Dir = c.OutDir
	pc.Format = c.Format

	return pc
}

// LoggerConfig returns the logger configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Pretty: c.Pretty}
}
