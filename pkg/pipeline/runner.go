package pipeline

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/matzehuels/shieldicon/pkg/background"
	"github.com/matzehuels/shieldicon/pkg/errors"
	"github.com/matzehuels/shieldicon/pkg/fonts"
	"github.com/matzehuels/shieldicon/pkg/glyph"
	"github.com/matzehuels/shieldicon/pkg/observability"
	"github.com/matzehuels/shieldicon/pkg/placement"
	"github.com/matzehuels/shieldicon/pkg/shield"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner can
// serve any number of sequential runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs all five stages and returns the finished icon in memory.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{RunID: uuid.NewString(), Seed: opts.Seed, Outputs: opts.Outputs}
	logger := r.logger(opts).With("run", result.RunID[:8])
	hooks := observability.Pipeline()

	// Stage 1: Background
	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	bg := background.Load(opts.Background, DefaultSize)
	result.Background = bg.Source
	result.Stats.BackgroundTime = time.Since(start)
	hooks.OnBackground(ctx, string(bg.Source), bg.Path, result.Stats.BackgroundTime)
	if bg.Fallback != nil {
		logger.Warn("background unusable, using fallback", "source", bg.Source, "err", bg.Fallback)
	} else {
		logger.Info("loaded background", "source", bg.Source, "path", bg.Path, "duration", result.Stats.BackgroundTime)
	}

	// Stage 2: Shield
	img := shield.Apply(bg.Image)

	// Stage 3: Placement
	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}
	start = time.Now()
	placements := placement.Layout(opts.Seed, shield.DefaultBounds(), nil)
	result.Stats.PlacementTime = time.Since(start)
	for _, p := range placements {
		result.Stats.Trials += p.Trials
		hooks.OnLetterPlaced(ctx, p.Char, p.X, p.Y, p.Size, p.Penalty, p.Trials)
		logger.Debug("placed letter",
			"char", string(p.Char),
			"x", round1(p.X), "y", round1(p.Y),
			"size", round1(p.Size), "rot", round1(p.Rotation),
			"penalty", round1(p.Penalty), "trials", p.Trials)
	}
	result.Placements = placements
	logger.Info("placed letters",
		"seed", opts.Seed,
		"letters", len(placements),
		"trials", result.Stats.Trials,
		"duration", result.Stats.PlacementTime)

	// Stage 4: Render
	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}
	start = time.Now()
	f, err := fonts.Resolve(opts.FontPath)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	result.Font = f.Name
	logger.Debug("using font", "name", f.Name, "path", f.Path)
	layer := glyph.New(f).Layer(DefaultSize, DefaultSize, placements)

	// Stage 5: Composite
	result.Image = imaging.Overlay(img, layer, image.Point{}, 1.0)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, len(placements), result.Stats.RenderTime)
	logger.Info("rendered icon", "font", f.Name, "duration", result.Stats.RenderTime)

	return result, nil
}

// Save writes the result to each of its outputs, resizing with Lanczos when
// the output size differs from the rendered size. Parent directories are
// created. It returns the written paths in order.
func (r *Runner) Save(ctx context.Context, result *Result) ([]string, error) {
	if result == nil || result.Image == nil {
		return nil, errors.New(errors.ErrCodeInternal, "nothing to save")
	}
	hooks := observability.Pipeline()
	native := result.Image.Bounds().Dx()

	paths := make([]string, 0, len(result.Outputs))
	for _, out := range result.Outputs {
		if err := checkCanceled(ctx); err != nil {
			return paths, err
		}
		if err := errors.ValidateOutputPath(out.Path); err != nil {
			return paths, err
		}
		if err := errors.ValidateSize(out.Size); err != nil {
			return paths, err
		}

		var img image.Image = result.Image
		if out.Size != native {
			img = imaging.Resize(result.Image, out.Size, out.Size, imaging.Lanczos)
		}

		err := writeImage(img, out.Path)
		hooks.OnOutputSaved(ctx, out.Path, out.Size, err)
		if err != nil {
			return paths, err
		}
		r.Logger.Info("saved icon", "path", out.Path, "size", out.Size)
		paths = append(paths, out.Path)
	}
	return paths, nil
}

func writeImage(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeEncode, err, "creating %s", dir)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "writing %s", path)
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCanceled, err, "generation interrupted")
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
