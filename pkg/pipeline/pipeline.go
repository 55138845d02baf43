// Package pipeline provides the label sheet pipeline for qrlabels.
//
// This package implements the complete generate → render → layout → export
// pipeline behind the CLI. Keeping it out of the command layer means the
// same run can be driven from tests or another front end.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: Draw unique codes, or import a saved code list
//  2. Render: Encode every code as a QR label drawing
//  3. Layout: Tile the labels onto LETTER pages
//  4. Export: Write the PDF, and optionally page SVGs, page PNGs and the
//     code list
//
// Each stage is also available as a plain function.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Count = 10
//	opts.Repeat = 2
//	opts.Name = "garage"
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Artifacts.PDF)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrlabels/pkg/codegen"
	"github.com/matzehuels/qrlabels/pkg/errors"
	qrio "github.com/matzehuels/qrlabels/pkg/io"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCount is the default number of unique codes.
	DefaultCount = 1

	// DefaultRepeat is the default number of copies per code.
	DefaultRepeat = 1

	// DefaultScale is the default label edge length in inches.
	DefaultScale = 1.5

	// DefaultOutput is the default output directory.
	DefaultOutput = "."
)

// DefaultEncoder is the default QR encoder backend.
const DefaultEncoder = label.DefaultEncoder

// Format names reported to observability hooks.
const (
	FormatPDF   = "pdf"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatCodes = "codes"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a label run.
// The toml tags name the keys accepted in the config file.
type Options struct {
	// Generate options
	Count     int    `toml:"count"`
	Seed      uint64 `toml:"seed"` // 0 draws from a random source
	CodesFile string `toml:"-"`    // reprint codes from a saved list instead of generating

	// Render options
	Scale   float64 `toml:"scale"`
	Encoder string  `toml:"encoder"`

	// Layout options
	Repeat   int  `toml:"repeat"`
	Grouped  bool `toml:"grouped"`
	Fill     bool `toml:"fill"`
	CutLines bool `toml:"include_cut_lines"`

	// Export options
	Output    string `toml:"output"`
	Name      string `toml:"name"`
	SaveSVGs  bool   `toml:"save_svgs"`
	SavePNGs  bool   `toml:"save_pngs"`
	SaveCodes bool   `toml:"save_codes"`

	// Runtime options (not configurable)
	Logger *log.Logger `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the options of a run with nothing configured.
func DefaultOptions() Options {
	return Options{
		Count:   DefaultCount,
		Repeat:  DefaultRepeat,
		Scale:   DefaultScale,
		Encoder: DefaultEncoder,
		Output:  DefaultOutput,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Codes are the printed codes in generation (or file) order.
	Codes []string

	// Layout is the page placement plan.
	Layout layout.Layout

	// Artifacts lists the files written.
	Artifacts qrio.Artifacts

	// Stats contains counts and timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Codes        int
	Placements   int
	Pages        int
	GenerateTime time.Duration
	RenderTime   time.Duration
	LayoutTime   time.Duration
	ExportTime   time.Duration
}

// Preview describes the page grid of a run without generating anything.
type Preview struct {
	Geometry   layout.Geometry
	Grid       layout.Grid
	Count      int // unique codes
	Copies     int // cells per code, after fill rounding
	Placements int
	Pages      int
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults fills empty output and encoder settings and checks
// every option. All configuration errors are reported here, before any
// rendering starts, including runs that would place more than
// layout.MaxPlacements labels. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Encoder == "" {
		o.Encoder = DefaultEncoder
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Fill {
		o.Grouped = true
	}

	if o.CodesFile == "" {
		if err := errors.ValidateCount("count", o.Count); err != nil {
			return err
		}
	}
	if err := errors.ValidateCount("repeat", o.Repeat); err != nil {
		return err
	}
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if err := errors.ValidateName(o.Name); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(o.Output); err != nil {
		return err
	}
	if _, err := label.EncoderByName(o.Encoder); err != nil {
		return err
	}
	if err := o.validateFit(); err != nil {
		return err
	}

	o.validated = true
	return nil
}

func (o *Options) validateFit() error {
	geom := o.Geometry()
	if geom.LabelSize < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v is too small to draw a label", o.Scale)
	}
	if geom.Grid().Empty() {
		w, h := geom.Printable()
		return errors.New(errors.ErrCodeInvalidInput,
			"a %.2fin label does not fit the printable area of %.2fin x %.2fin",
			o.Scale, w/layout.DPI, h/layout.DPI)
	}
	if o.CodesFile != "" {
		return layout.ValidatePlacements(0, geom.Grid(), o.LayoutOptions())
	}
	if capacity := codegen.Capacity(); o.Count > capacity {
		return errors.New(errors.ErrCodeCapacity,
			"cannot generate %d unique codes: only %d exist", o.Count, capacity)
	}
	return layout.ValidatePlacements(o.Count, geom.Grid(), o.LayoutOptions())
}

// Geometry returns the page geometry for the configured scale and cut lines.
func (o *Options) Geometry() layout.Geometry {
	return layout.NewGeometry(o.Scale, o.CutLines)
}

// LayoutOptions returns the tiling policy.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{Repeat: o.Repeat, Group: o.Grouped, Fill: o.Fill}
}

// BaseName returns the artifact base filename.
func (o *Options) BaseName() string {
	return qrio.BaseName(o.Name, o.Scale)
}

// Formats returns the artifact formats the run writes.
func (o *Options) Formats() []string {
	formats := []string{FormatPDF}
	if o.SaveSVGs {
		formats = append(formats, FormatSVG)
	}
	if o.SavePNGs {
		formats = append(formats, FormatPNG)
	}
	if o.SaveCodes {
		formats = append(formats, FormatCodes)
	}
	return formats
}
