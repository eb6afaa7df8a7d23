package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rocket/pkg/render"
	"github.com/matzehuels/rocket/pkg/rocket"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
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

// Execute runs the complete build → render pipeline.
// Assembly errors are returned unchanged so callers can inspect their code.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		r.Logger.Debug("drew seed", "seed", seed)
	}
	result := &Result{Seed: seed}

	// Stage 1: Build
	buildStart := time.Now()
	rkt, err := r.Build(ctx, opts, seed)
	if err != nil {
		return nil, err
	}
	result.Rocket = rkt
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built rocket",
		"height", rkt.Height(),
		"sections", rkt.Len(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	out, err := r.Render(rkt, opts, seed)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered rocket",
		"format", opts.Format,
		"bytes", len(out),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build assembles a rocket for opts with a source seeded by seed.
func (r *Runner) Build(ctx context.Context, opts Options, seed uint64) (*rocket.Rocket, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return rocket.Build(ctx, opts.Catalog, opts.Height, rocket.WithSource(rocket.NewSource(seed)))
}

// Render produces the output for rkt in opts.Format.
func (r *Runner) Render(rkt *rocket.Rocket, opts Options, seed uint64) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	var textOpts []render.Option
	if opts.Fill {
		textOpts = append(textOpts, render.WithFill())
	}

	switch opts.Format {
	case FormatJSON:
		data, err := render.JSON(rkt,
			render.WithJSONSeed(seed),
			render.WithJSONPalette(opts.Palette),
			render.WithJSONText(textOpts...))
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return []byte(render.Text(rkt, textOpts...)), nil
	}
}
