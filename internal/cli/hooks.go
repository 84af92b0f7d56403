package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/collage/pkg/observability"
)

// spinnerHooks narrates pipeline progress on a spinner.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

func (h spinnerHooks) OnDecodeStart(_ context.Context, page, images int) {
	h.spinner.SetMessage(fmt.Sprintf("Page %d: decoding %d images...", page, images))
}

func (h spinnerHooks) OnRenderStart(_ context.Context, page int) {
	h.spinner.SetMessage(fmt.Sprintf("Page %d: rendering...", page))
}

func (h spinnerHooks) OnWriteComplete(_ context.Context, page int, path string, _ time.Duration, err error) {
	if err == nil {
		h.spinner.SetMessage(fmt.Sprintf("Page %d: wrote %s", page, path))
	}
}

// withSpinnerHooks routes pipeline events to s until the returned function
// is called.
func withSpinnerHooks(s *Spinner) (restore func()) {
	prev := observability.Pipeline()
	observability.SetPipelineHooks(spinnerHooks{spinner: s})
	return func() { observability.SetPipelineHooks(prev) }
}
