// Package pipeline runs the icon generation end to end.
//
// The pipeline has five stages, always run in order:
//
//  1. Background: load the background file, or synthesize a fallback
//  2. Shield: composite the translucent shield mask onto the background
//  3. Placement: scatter the letter set inside the shield
//  4. Render: draw every letter onto a shared transparent text layer
//  5. Composite: lay the text layer over the shielded background
//
// [Runner.Execute] returns the finished image in memory; [Runner.Save]
// writes it at each requested output size.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Seed: 42}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Save(ctx, result)
package pipeline

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shieldicon/pkg/background"
	"github.com/matzehuels/shieldicon/pkg/errors"
	"github.com/matzehuels/shieldicon/pkg/placement"
	"github.com/matzehuels/shieldicon/pkg/shield"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBackground is the background file looked up when none is given.
	DefaultBackground = "public/ai_background.png"

	// DefaultSize is the edge length of the generated icon.
	DefaultSize = shield.CanvasSize
)

// DefaultOutputs returns the two icon files written by default.
func DefaultOutputs() []Output {
	return []Output{
		{Path: "public/icon-512.png", Size: 512},
		{Path: "public/icon-192.png", Size: 192},
	}
}

// =============================================================================
// Options
// =============================================================================

// Output is one file to write and its square edge length in pixels.
type Output struct {
	Path string `json:"path" toml:"path"`
	Size int    `json:"size" toml:"size"`
}

// Options contains all configuration for a pipeline run.
type Options struct {
	Background string   `json:"background,omitempty"`
	Outputs    []Output `json:"outputs,omitempty"`
	FontPath   string   `json:"font,omitempty"` // empty searches the system fonts

	// Seed drives every random choice. Zero draws a fresh seed, which is
	// reported in the Result so the run can be repeated.
	Seed uint64 `json:"seed,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults fills unset fields and validates outputs.
// Calling it more than once is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if len(o.Outputs) == 0 {
		o.Outputs = DefaultOutputs()
	}
	for _, out := range o.Outputs {
		if err := errors.ValidateOutputPath(out.Path); err != nil {
			return err
		}
		if err := errors.ValidateSize(out.Size); err != nil {
			return err
		}
	}
	if o.Seed == 0 {
		o.Seed = NewSeed()
	}
	o.validated = true
	return nil
}

// NewSeed draws a fresh non-zero seed.
func NewSeed() uint64 {
	return rand.Uint64() | 1
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Image is the finished icon at DefaultSize.
	Image *image.NRGBA

	// Placements are the letters in drawing order.
	Placements []placement.Placement

	// Seed is the seed actually used.
	Seed uint64

	// Background records where the background came from.
	Background background.Source

	// Font is the display name of the font used.
	Font string

	// Outputs are the files Save writes, defaults applied.
	Outputs []Output

	Stats Stats
}

// Stats contains per-stage timings.
type Stats struct {
	BackgroundTime time.Duration
	PlacementTime  time.Duration
	RenderTime     time.Duration
	Trials         int // trials drawn over all letters
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.BackgroundTime + s.PlacementTime + s.RenderTime
}
