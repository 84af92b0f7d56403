package pipeline

import (
	"context"
	"image"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/fonts"
	imgio "github.com/matzehuels/collage/pkg/io"
	"github.com/matzehuels/collage/pkg/layout"
	"github.com/matzehuels/collage/pkg/observability"
	"github.com/matzehuels/collage/pkg/render"
)

// Runner executes the collage pipeline.
//
// The Runner holds no per-run state; multiple goroutines can use the same
// Runner with different configurations.
type Runner struct {
	Logger *log.Logger

	// Now supplies the date for output names and the info strip.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewRunner creates a runner that logs to logger, or to the default
// charm logger when logger is nil.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates cfg and writes one collage per page.
func (r *Runner) Execute(ctx context.Context, cfg config.Collage) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	typeface, err := fonts.Load(cfg.Font)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	pages, err := r.collect(ctx, cfg, &result.Stats, &result.Skipped)
	if err != nil {
		return nil, err
	}

	// Every page is laid out before any pixels are decoded, so a geometry
	// error on a later page fails the run before anything is written.
	layouts := make([]*layout.Layout, len(pages))
	for i, page := range pages {
		if layouts[i], err = r.layout(ctx, cfg, i+1, page, &result.Stats); err != nil {
			return nil, err
		}
	}

	writer := imgio.NewWriter(cfg)
	writer.Now = r.now
	var staged []*imgio.Staged
	defer func() {
		for _, st := range staged {
			st.Discard()
		}
	}()
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pr, st, err := r.runPage(ctx, cfg, typeface, writer, i+1, len(pages), page, layouts[i], result)
		if err != nil {
			return nil, err
		}
		if st != nil {
			staged = append(staged, st)
			result.Pages = append(result.Pages, *pr)
		}
	}

	result.Stats.Skipped = len(result.Skipped)
	if len(result.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "none of the %d images in %s could be decoded", result.Stats.Files, cfg.Input)
	}
	if err := r.commit(ctx, staged, result); err != nil {
		return nil, err
	}
	return result, nil
}

// commit moves the staged pages to their output names and records the
// final paths in result.
func (r *Runner) commit(ctx context.Context, staged []*imgio.Staged, result *Result) error {
	hooks := observability.Pipeline()
	for i, st := range staged {
		start := time.Now()
		path, err := st.Commit()
		elapsed := time.Since(start)
		result.Stats.WriteTime += elapsed
		hooks.OnWriteComplete(ctx, st.Page, path, elapsed, err)
		if err != nil {
			return err
		}
		pr := &result.Pages[i]
		pr.Path = path
		r.Logger.Info("wrote collage", "path", path, "page", pr.Page, "images", len(pr.Images), "grid", pr.Layout.Grid.String())
	}
	return nil
}

// Plan validates cfg and computes every page's layout from image headers
// alone. Nothing is decoded or written.
func (r *Runner) Plan(ctx context.Context, cfg config.Collage) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var stats Stats
	var skipped []imgio.Failure
	pages, err := r.collect(ctx, cfg, &stats, &skipped)
	if err != nil {
		return nil, err
	}

	writer := imgio.NewWriter(cfg)
	writer.Now = r.now
	plan := &Plan{Canvas: layout.CanvasSize(cfg), Skipped: skippedFiles(skipped)}
	for i, page := range pages {
		l, err := r.layout(ctx, cfg, i+1, page, &stats)
		if err != nil {
			return nil, err
		}
		plan.Pages = append(plan.Pages, PagePlan{Page: i + 1, Name: writer.Name(i + 1), Images: page, Layout: l})
	}
	return plan, nil
}

// collect scans and probes the input folder and returns the sorted pages.
func (r *Runner) collect(ctx context.Context, cfg config.Collage, stats *Stats, skipped *[]imgio.Failure) ([][]imgio.Info, error) {
	hooks := observability.Pipeline()

	start := time.Now()
	paths, err := imgio.Scan(cfg.Input)
	stats.ScanTime = time.Since(start)
	hooks.OnScanComplete(ctx, cfg.Input, len(paths), stats.ScanTime, err)
	if err != nil {
		return nil, err
	}
	stats.Files = len(paths)
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no supported images in %s", cfg.Input)
	}
	r.Logger.Debug("scanned input", "folder", cfg.Input, "files", len(paths), "duration", stats.ScanTime)

	start = time.Now()
	infos, failed, err := imgio.Probe(ctx, paths, cfg.WorkerCount())
	stats.ProbeTime = time.Since(start)
	if err != nil {
		return nil, err
	}
	r.skip(ctx, failed, skipped)
	if len(infos) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "none of the %d images in %s could be decoded", len(paths), cfg.Input)
	}
	r.Logger.Debug("probed images", "readable", len(infos), "skipped", len(failed), "duration", stats.ProbeTime)

	imgio.Sort(infos, cfg.Sort)
	return imgio.Paginate(infos, cfg.PerPage), nil
}

func (r *Runner) layout(ctx context.Context, cfg config.Collage, page int, infos []imgio.Info, stats *Stats) (*layout.Layout, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, page, len(infos))

	start := time.Now()
	sizes := make([]layout.Size, len(infos))
	for i, in := range infos {
		sizes[i] = in.Size
	}
	l, err := layout.Compute(sizes, cfg)
	elapsed := time.Since(start)
	stats.LayoutTime += elapsed

	grid := ""
	if l != nil {
		grid = l.Grid.String()
	}
	hooks.OnLayoutComplete(ctx, page, grid, elapsed, err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("computed layout", "page", page, "grid", grid, "images", len(infos), "duration", elapsed)
	return l, nil
}

// runPage decodes, renders and stages one page laid out as l. Images that
// fail to decode are dropped and the page is laid out again without them.
// A page left with no images is skipped and reported as nil.
func (r *Runner) runPage(ctx context.Context, cfg config.Collage, typeface *fonts.Font, w *imgio.Writer,
	page, pages int, infos []imgio.Info, l *layout.Layout, result *Result) (*PageResult, *imgio.Staged, error) {
	hooks := observability.Pipeline()

	var tiles []image.Image
	for {
		paths := make([]string, len(infos))
		for i, in := range infos {
			paths[i] = in.Path
		}
		hooks.OnDecodeStart(ctx, page, len(paths))
		start := time.Now()
		var failed []imgio.Failure
		var err error
		tiles, failed, err = imgio.DecodeAll(ctx, paths, cfg.WorkerCount(), func(i int, img image.Image) (image.Image, error) {
			return render.Prepare(img, l.Placements[i], cfg.Fit), nil
		})
		elapsed := time.Since(start)
		result.Stats.DecodeTime += elapsed
		if err != nil {
			return nil, nil, err
		}
		hooks.OnDecodeComplete(ctx, page, len(paths)-len(failed), len(failed), elapsed)
		if len(failed) == 0 {
			break
		}

		r.skip(ctx, failed, &result.Skipped)
		infos = slices.DeleteFunc(slices.Clone(infos), func(in imgio.Info) bool {
			return slices.ContainsFunc(failed, func(f imgio.Failure) bool { return f.Path == in.Path })
		})
		if len(infos) == 0 {
			r.Logger.Warn("skipping page with no readable images", "page", page)
			return nil, nil, nil
		}
		if l, err = r.layout(ctx, cfg, page, infos, &result.Stats); err != nil {
			return nil, nil, err
		}
	}

	for i, p := range l.Placements {
		if p.Rotated {
			observability.Image().OnImageRotated(ctx, infos[i].Path)
		}
	}

	opts, err := r.textOptions(cfg, l, infos, page, pages)
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, render.WithFont(typeface))

	hooks.OnRenderStart(ctx, page)
	start := time.Now()
	canvas, err := render.Render(l, tiles, cfg, opts...)
	elapsed := time.Since(start)
	result.Stats.RenderTime += elapsed
	hooks.OnRenderComplete(ctx, page, elapsed, err)
	if err != nil {
		return nil, nil, err
	}

	start = time.Now()
	st, err := w.Stage(canvas, page)
	result.Stats.WriteTime += time.Since(start)
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, len(infos))
	for i, in := range infos {
		names[i] = in.Name
	}
	result.Stats.Images += len(infos)
	r.Logger.Debug("rendered page", "page", page, "images", len(infos), "grid", l.Grid.String())
	return &PageResult{Page: page, Images: names, Layout: l}, st, nil
}

func (r *Runner) textOptions(cfg config.Collage, l *layout.Layout, infos []imgio.Info, page, pages int) ([]render.Option, error) {
	var opts []render.Option
	if cfg.Captions {
		captions := make([]string, len(infos))
		for i, in := range infos {
			c, err := render.Caption(cfg, in.Taken)
			if err != nil {
				return nil, err
			}
			captions[i] = c
		}
		opts = append(opts, render.WithCaptions(captions))
	}
	if cfg.InfoBox {
		lines, err := render.InfoLines(cfg, l, page, pages, r.now())
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithInfo(lines))
	}
	return opts, nil
}

func (r *Runner) skip(ctx context.Context, failed []imgio.Failure, skipped *[]imgio.Failure) {
	for _, f := range failed {
		r.Logger.Warn("skipping image", "file", f.Path, "err", errors.UserMessage(f.Err))
		observability.Image().OnImageSkipped(ctx, f.Path, f.Err)
	}
	*skipped = append(*skipped, failed...)
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
