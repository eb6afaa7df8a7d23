// Package pipeline ties the rocket generator together: options in, rendered
// output out.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: assemble a rocket of the requested height from a catalog
//  2. Render: produce text or JSON output from the finished rocket
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Height: 12})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Output))
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/rocket/pkg/errors"
	"github.com/matzehuels/rocket/pkg/parts"
	"github.com/matzehuels/rocket/pkg/rocket"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultPalette is the palette used when none is requested.
const DefaultPalette = "america"

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidPalettes is the set of accepted palette names. Palettes are accepted
// for command-line compatibility and do not change the output.
var ValidPalettes = map[string]bool{
	DefaultPalette: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	Height  int     `json:"height"`
	Palette string  `json:"palette,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"` // nil draws a fresh seed
	Format  string  `json:"format,omitempty"`
	Fill    bool    `json:"fill,omitempty"` // pad rows to the full rocket width

	// Runtime options (not serialized)
	Catalog *parts.Catalog `json:"-"` // nil uses parts.Default()

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Rocket is the assembled rocket.
	Rocket *rocket.Rocket

	// Seed is the seed the rocket was built with.
	Seed uint64

	// Output is the rendered rocket in the requested format.
	Output []byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join([]string{FormatText, FormatJSON}, ", "))
	}
	return nil
}

// ValidatePalette checks that a palette name is known.
func ValidatePalette(palette string) error {
	if !ValidPalettes[palette] {
		return errors.New(errors.ErrCodeInvalidPalette, "invalid palette: %q (must be one of: %s)", palette, DefaultPalette)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
//
// Height is checked by the assembler itself so that a short rocket is always
// reported as a CONFIGURATION error.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidatePalette(o.Palette); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Catalog == nil {
		o.Catalog = parts.Default()
	}
	o.validated = true
	return nil
}
