// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about collage runs and individual image files.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the pipeline packages
// do not import any metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetImageHooks(&myImageHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, page, len(images))
//	// ... compute layout ...
//	observability.Pipeline().OnLayoutComplete(ctx, page, grid.String(), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives stage events from the collage pipeline.
// Page numbers are 1-based.
type PipelineHooks interface {
	// Scan events
	OnScanComplete(ctx context.Context, dir string, files int, duration time.Duration, err error)

	// Decode events, once per page
	OnDecodeStart(ctx context.Context, page, images int)
	OnDecodeComplete(ctx context.Context, page, decoded, failed int, duration time.Duration)

	// Layout events
	OnLayoutStart(ctx context.Context, page, images int)
	OnLayoutComplete(ctx context.Context, page int, grid string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, page int)
	OnRenderComplete(ctx context.Context, page int, duration time.Duration, err error)

	// Write events
	OnWriteComplete(ctx context.Context, page int, path string, duration time.Duration, err error)
}

// =============================================================================
// Image Hooks
// =============================================================================

// ImageHooks receives events about individual source files.
type ImageHooks interface {
	// OnImageSkipped records a file left out because it could not be read.
	OnImageSkipped(ctx context.Context, path string, err error)

	// OnImageRotated records a source rotated to match its cell.
	OnImageRotated(ctx context.Context, path string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnScanComplete(context.Context, string, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnDecodeStart(context.Context, int, int)                             {}
func (NoopPipelineHooks) OnDecodeComplete(context.Context, int, int, int, time.Duration)      {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                             {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error)         {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, int, string, time.Duration, error)  {}

// NoopImageHooks is a no-op implementation of ImageHooks.
type NoopImageHooks struct{}

func (NoopImageHooks) OnImageSkipped(context.Context, string, error) {}
func (NoopImageHooks) OnImageRotated(context.Context, string)        {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	imageHooks    ImageHooks    = NoopImageHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetImageHooks registers custom image hooks.
func SetImageHooks(h ImageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		imageHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Image returns the registered image hooks.
func Image() ImageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return imageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	imageHooks = NoopImageHooks{}
}
