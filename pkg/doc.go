// Package pkg provides the core libraries for collage.
//
// # Overview
//
// Collage arranges a folder of images into grid-layout collages. The pkg
// directory is organized around one run of that job:
//
//  1. [config] - Run configuration, TOML files and validation
//  2. [layout] - The layout engine: grid choice, cell geometry, fitting
//  3. [io] - Scanning, header probing, parallel decoding, atomic writes
//  4. [render] - Canvas composition, frames, captions and the info strip
//  5. [pipeline] - Orchestration (scan → probe → layout → decode → render → write)
//
// # Architecture
//
// The data flow through a run:
//
//	Image folder
//	     ↓
//	[io] Scan + Probe (sizes, orientation, capture dates)
//	     ↓
//	[layout] Compute (grid, cells, placements)
//	     ↓
//	[io] DecodeAll + [render] Prepare (parallel resample)
//	     ↓
//	[render] Render (canvas, text)
//	     ↓
//	[io] Writer (prefix-YYYYMMDD-page.png)
//
// # Quick Start
//
// Compute a layout without touching any pixels:
//
//	cfg := config.Default()
//	cfg.Width, cfg.Height, cfg.Padding = 1000, 600, 10
//
//	l, err := layout.Compute([]layout.Size{{Width: 400, Height: 300}, {Width: 300, Height: 400}}, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Grid) // 1×2
//
// Or run the whole job:
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, cfg)
//
// # Supporting Packages
//
// [fonts] - The embedded Go Regular typeface, or a TTF/OTF file.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Optional hooks for pipeline and per-image events.
//
// [buildinfo] - Version information injected at build time.
//
// [config]: github.com/matzehuels/collage/pkg/config
// [layout]: github.com/matzehuels/collage/pkg/layout
// [io]: github.com/matzehuels/collage/pkg/io
// [render]: github.com/matzehuels/collage/pkg/render
// [pipeline]: github.com/matzehuels/collage/pkg/pipeline
// [fonts]: github.com/matzehuels/collage/pkg/fonts
// [errors]: github.com/matzehuels/collage/pkg/errors
// [observability]: github.com/matzehuels/collage/pkg/observability
// [buildinfo]: github.com/matzehuels/collage/pkg/buildinfo
package pkg
