// Package observability provides hooks for instrumenting icon generation.
//
// Hooks let the command layer (or a test) observe each stage of the pipeline
// without the pipeline depending on a logging or metrics backend. The default
// implementation is a no-op; the CLI registers a logger-backed one when run
// with --verbose.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnLetterPlaced(ctx, 'B', x, y, size, penalty, trials)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the icon pipeline.
type PipelineHooks interface {
	// OnBackground reports how the background was obtained ("file",
	// "gradient" or "solid") and from which path.
	OnBackground(ctx context.Context, source, path string, duration time.Duration)

	// OnLetterPlaced reports the winning candidate for one letter.
	OnLetterPlaced(ctx context.Context, char rune, x, y, size, penalty float64, trials int)

	// OnRenderComplete reports the end of glyph rendering and compositing.
	OnRenderComplete(ctx context.Context, letters int, duration time.Duration)

	// OnOutputSaved reports a written output file.
	OnOutputSaved(ctx context.Context, path string, size int, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBackground(context.Context, string, string, time.Duration) {}
func (NoopPipelineHooks) OnLetterPlaced(context.Context, rune, float64, float64, float64, float64, int) {
}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration) {}
func (NoopPipelineHooks) OnOutputSaved(context.Context, string, int, error)    {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
