// Package observability provides hooks for tracing rocket assembly.
//
// The assembler itself never logs. Instead it reports what it does through
// the hooks registered here, and the application decides what to do with the
// events (log them, count them, ignore them).
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnBuildStart(ctx, height)
//	// ... assemble ...
//	observability.Build().OnBuildComplete(ctx, height, sections, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from the rocket assembler.
type BuildHooks interface {
	// OnBuildStart is called once the requested height has been accepted.
	OnBuildStart(ctx context.Context, height int)

	// OnPartSelected is called after every part placed in the rocket.
	// remaining is the height still to fill after placing the part.
	OnPartSelected(ctx context.Context, phase, partID string, remaining int)

	// OnBuildComplete is called when assembly finishes or aborts.
	OnBuildComplete(ctx context.Context, height, sections int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, int)                               {}
func (NoopBuildHooks) OnPartSelected(context.Context, string, string, int)             {}
func (NoopBuildHooks) OnBuildComplete(context.Context, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any rocket is built.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
}
