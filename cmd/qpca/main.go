// SPDX-License-Identifier: MIT

// Command qpca runs the qPCA versus classical PCA demonstration and writes
// comparison charts.
//
// Usage:
//
//	qpca [--samples 50] [--components 2] [--dataset gaussian|binary]
//	     [--seed 42] [--out examples] [--format svg] [--log-level info] [--pretty]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/qpca/config"
	"github.com/katalvlaran/qpca/logger"
	"github.com/katalvlaran/qpca/pipeline"
	"github.com/katalvlaran/qpca/plots"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("qpca", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	lc := cfg.LoggerConfig()
	lc.Out = stderr
	log := logger.New(lc)

	renderer, err := plots.New(cfg.PlotConfig())
	if err != nil {
		log.Error().Err(err).Msg("Failed to configure renderer")
		return exitError
	}

	res, err := pipeline.Run(cfg.Samples, cfg.Components, cfg.Kind(),
		pipeline.WithSeed(cfg.Seed),
		pipeline.WithRenderer(renderer),
		pipeline.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("Pipeline failed")
		return exitError
	}

	fmt.Fprintf(stdout, "qPCA eigenvalues: %s\n", formatValues(res.QPCA.Values))
	fmt.Fprintf(stdout, "Classical PCA eigenvalues: %s\n", formatValues(res.Classical.Values))
	fmt.Fprintf(stdout, "%s plots saved in %s/ directory.\n",
		strings.ToUpper(renderer.Config().Format), strings.TrimSuffix(renderer.Config().Dir, "/"))

	return exitOK
}

// formatValues prints values rounded to three decimals as "[a b c]".
func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		r := math.Round(v*1000) / 1000
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		parts[i] = strconv.FormatFloat(r, 'f', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
