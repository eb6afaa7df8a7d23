// Package pkg provides the core libraries of the rocket generator.
//
// # Overview
//
// Rocket assembles random ASCII-art rockets of an exact height from a
// catalog of parts and prints them centered. The pkg directory is organized
// into these areas:
//
//  1. [parts] - The part catalog: categories, stacking rules, TOML loading
//  2. [rocket] - The assembler: a five-phase state machine over a catalog
//  3. [render] - Output: centered text and JSON documents
//  4. [pipeline] - Orchestration (build → render) used by the CLI
//  5. [errors] - Error codes shared by every package
//
// # Architecture
//
// The typical data flow:
//
//	Part catalog (built-in or TOML)
//	         ↓
//	    [rocket] package (nose cone → body → engine → decoration)
//	         ↓
//	    [render] package (center rows, or encode JSON)
//	         ↓
//	    text/JSON output
//
// # Quick Start
//
// Build and print a rocket:
//
//	import (
//	    "context"
//	    "fmt"
//	    "github.com/matzehuels/rocket/pkg/parts"
//	    "github.com/matzehuels/rocket/pkg/render"
//	    "github.com/matzehuels/rocket/pkg/rocket"
//	)
//
//	r, err := rocket.Build(context.Background(), parts.Default(), 12)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(render.Text(r))
//
// Reproduce a rocket from a seed:
//
//	r, _ := rocket.Build(ctx, parts.Default(), 12,
//	    rocket.WithSource(rocket.NewSource(42)))
//
// # Supporting Packages
//
// [observability] - Hooks for assembly events (start, part placed, complete).
// The CLI installs hooks that log at debug level.
//
// [buildinfo] - Version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/rocket/...    # Specific package
//	go test -run Example        # Examples only
//
// [parts]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/parts
// [rocket]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/rocket
// [render]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/rocket/pkg/buildinfo
package pkg
