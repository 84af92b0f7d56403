package io

import (
	"context"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/collage/pkg/errors"
)

// TransformFunc turns the decoded image at index i into the value kept by
// DecodeAll. It runs on the worker goroutine, so expensive per-image work
// such as resampling is parallelized with decoding.
type TransformFunc func(i int, img image.Image) (image.Image, error)

// Decode fully decodes the image at path, applying its EXIF orientation.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeImageDecode, err, "missing input %s", path)
		}
		return nil, decodeError(path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, decodeError(path, errors.New(errors.ErrCodeImageDecode, "empty image"))
	}
	return img, nil
}

// DecodeAll decodes paths on up to workers goroutines and passes each image
// through transform, which may be nil. The result has one entry per path,
// in path order; entries that failed are nil and listed in the failures.
// Transform errors are reported as failures too. The error is non-nil only
// if ctx is canceled.
func DecodeAll(ctx context.Context, paths []string, workers int, transform TransformFunc) ([]image.Image, []Failure, error) {
	out := make([]image.Image, len(paths))
	errs := make([]error, len(paths))
	err := forEach(ctx, len(paths), workers, func(i int) {
		img, err := Decode(paths[i])
		if err == nil && transform != nil {
			img, err = transform(i, img)
		}
		out[i], errs[i] = img, err
	})
	if err != nil {
		return nil, nil, err
	}

	var failed []Failure
	for i, e := range errs {
		if e != nil {
			out[i] = nil
			failed = append(failed, Failure{Index: i, Path: paths[i], Err: e})
		}
	}
	return out, failed, nil
}

// forEach calls fn for 0..n-1 on a bounded pool. Each fn writes only its
// own index, so no further synchronization is needed.
func forEach(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
