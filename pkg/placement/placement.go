package placement

import (
	"image/color"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/shieldicon/pkg/shield"
)

// Options configures the search. Pass nil to the functions of this package
// to use the defaults.
type Options struct {
	// MaxTrials is the number of candidates drawn per letter. Default: 50.
	MaxTrials int

	// SpreadX and SpreadY are the widths of the uniform position ranges
	// around the shield centre. Defaults: 140 and 160.
	SpreadX, SpreadY float64

	// OffsetY shifts the vertical range. Default: -10 (slightly upwards).
	OffsetY float64

	// SizeJitter is the maximum growth over the style's base size. Default: 40.
	SizeJitter float64

	// RotationSpan is the width of the rotation range in degrees, centred on
	// zero. Default: 40 (so -20..+20).
	RotationSpan float64

	// OverlapRadius scales the sum of two sizes into a collision radius.
	// Default: 0.45.
	OverlapRadius float64

	// OverlapWeight multiplies the depth of a collision. Default: 5.
	OverlapWeight float64
}

var defaultOpts = Options{
	MaxTrials:     50,
	SpreadX:       140,
	SpreadY:       160,
	OffsetY:       -10,
	SizeJitter:    40,
	RotationSpan:  40,
	OverlapRadius: 0.45,
	OverlapWeight: 5,
}

// DefaultOptions returns a copy of the default search options.
func DefaultOptions() Options {
	return defaultOpts
}

// Candidate is a scored position, size and rotation for one letter.
type Candidate struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"` // degrees, counter-clockwise
	Penalty  float64 `json:"penalty"`
	Trials   int     `json:"trials"` // trials drawn before the search stopped
}

// Placement is a letter with its chosen candidate and colours.
type Placement struct {
	Letter
	Candidate
	Color  color.NRGBA
	Shadow color.NRGBA
}

// NewRand returns the generator used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Shuffle returns letters in a random order. The input is not modified.
func Shuffle(letters []Letter, rng *rand.Rand) []Letter {
	out := slices.Clone(letters)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Penalty scores a letter of the given size centred at (x, y): the boundary
// penalty from b plus, for every placed letter closer than the collision
// radius, the collision depth times the overlap weight.
func Penalty(x, y, size float64, placed []Placement, b shield.Bounds, opts *Options) float64 {
	if opts == nil {
		opts = &defaultOpts
	}
	p := b.Penalty(x, y, size)
	for _, q := range placed {
		dist := math.Hypot(x-q.X, y-q.Y)
		radius := (size + q.Size) * opts.OverlapRadius
		if dist < radius {
			p += (radius - dist) * opts.OverlapWeight
		}
	}
	return p
}

// Search draws up to MaxTrials candidates for a letter of the given base size
// and returns the one with the lowest penalty. Ties keep the earliest trial.
// The search stops at the first zero-penalty trial.
//
// Before any trial the best guess is the shield centre at base size with no
// rotation, so with MaxTrials <= 0 that guess is returned with an infinite
// penalty.
func Search(rng *rand.Rand, base float64, placed []Placement, b shield.Bounds, opts *Options) Candidate {
	if opts == nil {
		opts = &defaultOpts
	}
	best := Candidate{
		X:       b.Center.X,
		Y:       b.Center.Y,
		Size:    base,
		Penalty: math.Inf(1),
	}

	for trial := 1; trial <= opts.MaxTrials; trial++ {
		x := b.Center.X + (rng.Float64()-0.5)*opts.SpreadX
		y := b.Center.Y + (rng.Float64()-0.5)*opts.SpreadY + opts.OffsetY
		size := base + rng.Float64()*opts.SizeJitter
		rot := (rng.Float64() - 0.5) * opts.RotationSpan

		best.Trials = trial
		p := Penalty(x, y, size, placed, b, opts)
		if p < best.Penalty {
			best = Candidate{X: x, Y: y, Size: size, Rotation: rot, Penalty: p, Trials: trial}
		}
		if p == 0 {
			break
		}
	}
	return best
}

// Place shuffles letters with rng and places them one after another, each
// against all letters placed before it. The fill colour is drawn uniformly
// from the letter's palette just before its search.
func Place(rng *rand.Rand, letters []Letter, b shield.Bounds, opts *Options) []Placement {
	order := Shuffle(letters, rng)
	placed := make([]Placement, 0, len(order))
	for _, l := range order {
		style := StyleFor(l.Kind)
		fill := style.Palette[rng.IntN(len(style.Palette))]
		c := Search(rng, style.BaseSize, placed, b, opts)
		placed = append(placed, Placement{
			Letter:    l,
			Candidate: c,
			Color:     fill,
			Shadow:    style.Shadow,
		})
	}
	return placed
}

// Layout places the fixed letter set for seed.
func Layout(seed uint64, b shield.Bounds, opts *Options) []Placement {
	return Place(NewRand(seed), Letters(), b, opts)
}
