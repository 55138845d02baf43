// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about each stage of a label run.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
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
// The qrlabels binary registers logging hooks when run with --verbose.
//
// The pipeline calls hooks around every stage:
//
//	observability.Pipeline().OnGenerateStart(ctx, count)
//	// ... generate codes ...
//	observability.Pipeline().OnGenerateComplete(ctx, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the label pipeline.
type PipelineHooks interface {
	// Code generation (or import) events
	OnGenerateStart(ctx context.Context, count int)
	OnGenerateComplete(ctx context.Context, count int, duration time.Duration, err error)

	// Label rendering events
	OnRenderStart(ctx context.Context, encoder string, labels int)
	OnRenderComplete(ctx context.Context, encoder string, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, placements int)
	OnLayoutComplete(ctx context.Context, pages int, duration time.Duration, err error)

	// Export events
	OnExportStart(ctx context.Context, formats []string)
	OnExportComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnExportStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnExportComplete(context.Context, []string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any run.
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

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
