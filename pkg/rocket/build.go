package rocket

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/matzehuels/rocket/pkg/errors"
	"github.com/matzehuels/rocket/pkg/observability"
	"github.com/matzehuels/rocket/pkg/parts"
)

const (
	// MinRatio and MaxRatio bound the body/decoration ratio drawn per build.
	MinRatio = 0.2
	MaxRatio = 0.4

	// bodyReserve is the height kept free during the body phase: one row
	// for the engine and one for decoration.
	bodyReserve = 2
)

// Phase is a step of the assembly state machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseNoseCone
	PhaseBody
	PhaseEngine
	PhaseDecoration
	PhaseDone
)

var phaseNames = [...]string{
	PhaseInit:       "init",
	PhaseNoseCone:   "nose",
	PhaseBody:       "body",
	PhaseEngine:     "engine",
	PhaseDecoration: "decoration",
	PhaseDone:       "done",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Option configures [Build].
type Option func(*assembler)

// WithSource sets the random source. By default every build gets a fresh
// PCG source seeded from the runtime's random generator.
func WithSource(src Source) Option {
	return func(a *assembler) {
		if src != nil {
			a.src = src
		}
	}
}

// WithRatio fixes the body/decoration ratio instead of drawing it
// uniformly from [MinRatio, MaxRatio). Smaller values give longer bodies.
func WithRatio(ratio float64) Option {
	return func(a *assembler) {
		a.ratio = ratio
		a.fixedRatio = true
	}
}

// assembler holds the running state of one build. height and bottom are
// derived from sections and kept alongside to avoid rescanning.
type assembler struct {
	ctx        context.Context
	catalog    *parts.Catalog
	src        Source
	maxHeight  int
	ratio      float64
	fixedRatio bool

	phase    Phase
	sections []*parts.Part
	height   int
	bottom   int
}

// Build assembles a rocket exactly height rows tall from catalog.
//
// Errors carry one of three codes: CONFIGURATION when height is below 3,
// NO_ELIGIBLE_PART when a phase has no candidate, UNSATISFIABLE_HEIGHT
// when decoration cannot fill the remaining rows. No partial rocket is
// returned on failure.
func Build(ctx context.Context, catalog *parts.Catalog, height int, opts ...Option) (*Rocket, error) {
	a := &assembler{
		ctx:       ctx,
		catalog:   catalog,
		maxHeight: height,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.src == nil {
		a.src = NewSource(rand.Uint64())
	}

	start := time.Now()
	err := a.run()
	observability.Build().OnBuildComplete(ctx, height, len(a.sections), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Rocket{
		maxHeight: a.maxHeight,
		ratio:     a.ratio,
		sections:  a.sections,
	}, nil
}

func (a *assembler) run() error {
	for a.phase != PhaseDone {
		next, err := a.step()
		if err != nil {
			return err
		}
		a.phase = next
	}
	return nil
}

// step performs one unit of work in the current phase and returns the
// phase to continue with.
func (a *assembler) step() (Phase, error) {
	switch a.phase {
	case PhaseInit:
		if a.catalog == nil {
			return a.phase, errors.New(errors.ErrCodeInvalidInput, "no part catalog")
		}
		if err := errors.ValidateHeight(a.maxHeight); err != nil {
			return a.phase, err
		}
		if !a.fixedRatio {
			a.ratio = MinRatio + (MaxRatio-MinRatio)*a.src.Float64()
		}
		observability.Build().OnBuildStart(a.ctx, a.maxHeight)
		return PhaseNoseCone, nil

	case PhaseNoseCone:
		p, err := a.choose(NoseCone(a.remaining()), "nose cone")
		if err != nil {
			return a.phase, err
		}
		return PhaseBody, a.appendSection(p)

	case PhaseBody:
		if !a.wantsBody() {
			return PhaseEngine, nil
		}
		p, err := a.choose(Hull(a.bottom, a.remaining()-bodyReserve), "body or transition")
		if err != nil {
			return a.phase, err
		}
		return PhaseBody, a.appendSection(p)

	case PhaseEngine:
		p, err := a.choose(EngineFor(a.bottom, a.remaining()), "engine")
		if err != nil {
			return a.phase, err
		}
		return PhaseDecoration, a.appendSection(p)

	case PhaseDecoration:
		if a.remaining() == 0 {
			return PhaseDone, nil
		}
		p, err := a.choose(Decoration(a.bottom, a.remaining()), "decoration")
		if errors.Is(err, errors.ErrCodeNoEligiblePart) {
			return a.phase, errors.Wrap(errors.ErrCodeUnsatisfiableHeight, err,
				"cannot fill the last %d rows of a %d-row rocket", a.remaining(), a.maxHeight)
		}
		if err != nil {
			return a.phase, err
		}
		if p.Category == (parts.Tip{}) {
			return PhaseDecoration, a.prependSection(p)
		}
		return PhaseDecoration, a.appendSection(p)
	}
	return a.phase, errors.New(errors.ErrCodeInternal, "unexpected assembly phase %v", a.phase)
}

// wantsBody reports whether the body phase should place another part.
func (a *assembler) wantsBody() bool {
	remaining := a.remaining()
	return float64(remaining)/float64(a.height) > a.ratio && remaining > bodyReserve
}

func (a *assembler) remaining() int {
	return a.maxHeight - a.height
}

// choose picks one matching part by weight.
func (a *assembler) choose(pred parts.Predicate, what string) (*parts.Part, error) {
	candidates := a.catalog.Query(pred)
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeNoEligiblePart,
			"no %s part fits under a %d-wide joint within %d rows", what, a.bottom, a.remaining())
	}
	weights := make([]int, len(candidates))
	for i, p := range candidates {
		weights[i] = p.Weight
	}
	i := a.src.Pick(weights)
	if i < 0 || i >= len(candidates) {
		return nil, errors.New(errors.ErrCodeInternal, "random source picked %d of %d candidates", i, len(candidates))
	}
	return candidates[i], nil
}

func (a *assembler) appendSection(p *parts.Part) error {
	if err := a.fits(p); err != nil {
		return err
	}
	a.sections = append(a.sections, p)
	a.height += p.Height
	a.bottom = p.Connector
	observability.Build().OnPartSelected(a.ctx, a.phase.String(), p.ID, a.remaining())
	return nil
}

// prependSection places p above the current top. The bottom joint is
// unchanged.
func (a *assembler) prependSection(p *parts.Part) error {
	if err := a.fits(p); err != nil {
		return err
	}
	a.sections = slices.Insert(a.sections, 0, p)
	a.height += p.Height
	observability.Build().OnPartSelected(a.ctx, a.phase.String(), p.ID, a.remaining())
	return nil
}

func (a *assembler) fits(p *parts.Part) error {
	if a.height+p.Height > a.maxHeight {
		return errors.New(errors.ErrCodeInternal,
			"part %s (%d rows) would make the rocket taller than %d rows", p.ID, p.Height, a.maxHeight)
	}
	return nil
}
