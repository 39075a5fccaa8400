// Package pkg provides the libraries behind the shieldicon generator.
//
// # Overview
//
// Shieldicon builds a square app icon: a background image, a translucent
// shield over it, and the letters B, T, S (gold) and A, R, M, Y (silver and
// lilac) scattered inside the shield. Letter placement is a randomized
// search that is fully determined by a seed.
//
// # Architecture
//
// The data flow of one run:
//
//	background file (or gradient / solid fallback)
//	         ↓
//	    [shield] mask composited on top
//	         ↓
//	    [placement] letter positions, sizes, rotations, colours
//	         ↓
//	    [glyph] letters drawn with [fonts] onto a text layer
//	         ↓
//	    PNG outputs (512 and 192 by default)
//
// [pipeline] runs these stages in order. [config] reads the optional TOML
// file, [errors] carries typed error codes, and [observability] exposes
// per-stage hooks.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Seed: 42})
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.Save(ctx, result)
//
// [shield]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/shield
// [placement]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/placement
// [glyph]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/glyph
// [fonts]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/shieldicon/pkg/observability
package pkg
