// SPDX-License-Identifier: MIT

package plots

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/qpca"
)

// Chart file stems; the extension comes from Config.Format.
const (
	EigenvaluesFile = "qpca_eigenvalues"
	VarianceFile    = "qpca_variance_plot"
	StatesFile      = "qpca_state_visualization"
)

// DefaultDir is where charts land unless configured otherwise.
const DefaultDir = "examples"

var supportedFormats = map[string]bool{
	"svg": true, "png": true, "pdf": true, "eps": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

var (
	// ErrUnsupportedFormat is returned for an image format gonum/plot cannot write.
	ErrUnsupportedFormat = fmt.Errorf("%w: plots: unsupported format", qpca.ErrInvalidArgument)

	// ErrBadSize is returned for a non-positive canvas width or height.
	ErrBadSize = fmt.Errorf("%w: plots: canvas size must be > 0", qpca.ErrInvalidArgument)

	// ErrNoData is returned when a chart has nothing to draw.
	ErrNoData = fmt.Errorf("%w: plots: no data", qpca.ErrInvalidArgument)
)

// Config selects the output directory, image format and canvas size.
// The backend is fixed per Renderer; there is no process-wide mode.
type Config struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length
}

// DefaultConfig renders 6×4 inch SVG files into DefaultDir.
func DefaultConfig() Config {
	return Config{
		Dir:    DefaultDir,
		Format: "svg",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Validate normalizes Format to lower case and checks every field.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c.Format), "."))
	if !supportedFormats[c.Format] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrBadSize
	}
	if c.Dir == "" {
		c.Dir = "."
	}

	return nil
}
