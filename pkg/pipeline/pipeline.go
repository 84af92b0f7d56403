// Package pipeline provides the end-to-end collage pipeline.
//
// This package implements the complete scan → probe → layout → decode →
// render → write pipeline behind the CLI. Keeping the orchestration here
// lets the command layer stay a thin translation from flags to a
// [config.Collage].
//
// # Architecture
//
// A run consists of these stages:
//
//  1. Scan: list supported image files in the input folder
//  2. Probe: read sizes, EXIF orientation and capture dates from headers
//  3. Sort and paginate: order the images and split them into pages
//  4. Layout: compute the grid and placements for each page
//  5. Decode: decode and resample the page's images on a worker pool
//  6. Render: compose the canvas, frames, captions and info strip
//  7. Write: encode the page to a temporary file in the output directory
//
// Every page is laid out before the first decode, and staged pages are
// renamed to their output names only after the last one has been rendered,
// so a failing run leaves no collages behind. Only one page's pixels are
// held in memory at a time. Files that cannot be
// read are skipped with a warning; the run fails with EMPTY_INPUT only when
// nothing readable is left.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	for _, p := range result.Pages {
//	    fmt.Println(p.Path)
//	}
//
// [Runner.Plan] runs stages 1 to 4 only, for previews that must not touch
// pixels or the output directory.
//
// [config.Collage]: github.com/matzehuels/collage/pkg/config.Collage
package pipeline

import (
	"time"

	imgio "github.com/matzehuels/collage/pkg/io"
	"github.com/matzehuels/collage/pkg/layout"
)

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pages lists the collages written, in page order.
	Pages []PageResult

	// Skipped lists the source files left out, at probe or decode time.
	Skipped []imgio.Failure

	// Stats contains timing and size information.
	Stats Stats
}

// PageResult describes one written collage.
type PageResult struct {
	Page   int            // 1-based page number
	Path   string         // file written
	Images []string       // source file names in placement order
	Layout *layout.Layout // geometry used
}

// Stats contains pipeline execution statistics.
// Stage durations are summed over all pages.
type Stats struct {
	Files      int // supported files found by the scan
	Images     int // images placed on a collage
	Skipped    int // files left out
	ScanTime   time.Duration
	ProbeTime  time.Duration
	LayoutTime time.Duration
	DecodeTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// Total returns the sum of all stage durations.
func (s Stats) Total() time.Duration {
	return s.ScanTime + s.ProbeTime + s.LayoutTime + s.DecodeTime + s.RenderTime + s.WriteTime
}

// =============================================================================
// Plans
// =============================================================================

// Plan is the outcome of a dry run: what would be written, without pixels.
type Plan struct {
	Pages   []PagePlan    `json:"pages"`
	Skipped []SkippedFile `json:"skipped,omitempty"`
	Canvas  layout.Size   `json:"canvas"`
}

// PagePlan is the layout of one prospective collage.
type PagePlan struct {
	Page   int            `json:"page"`
	Name   string         `json:"name"` // output file name, before collision suffixes
	Images []imgio.Info   `json:"images"`
	Layout *layout.Layout `json:"layout"`
}

// SkippedFile is a JSON-friendly form of an [imgio.Failure].
type SkippedFile struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func skippedFiles(failed []imgio.Failure) []SkippedFile {
	out := make([]SkippedFile, len(failed))
	for i, f := range failed {
		out[i] = SkippedFile{Path: f.Path, Error: f.Err.Error()}
	}
	return out
}
