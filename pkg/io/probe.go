package io

import (
	"bufio"
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // register the WebP decoder alongside imaging's

	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/layout"
)

// DateSource records where an image's capture date came from.
type DateSource string

const (
	DateEXIF  DateSource = "exif"
	DateMTime DateSource = "mtime"
)

// Info describes a source image without its pixels.
type Info struct {
	Path       string      `json:"path"`
	Name       string      `json:"name"`
	Format     string      `json:"format"` // decoder name: jpeg, png, gif, bmp, tiff, webp
	Size       layout.Size `json:"size"`   // display size after EXIF orientation
	Taken      time.Time   `json:"taken"`
	DateSource DateSource  `json:"date_source"`
}

// Failure is a source file that could not be read.
type Failure struct {
	Index int
	Path  string
	Err   error
}

func (f Failure) Error() string { return f.Err.Error() }

// Probe reads the header of every path, using up to workers goroutines.
// Files whose header cannot be decoded are returned as failures and omitted
// from infos; the remaining infos keep the order of paths. The error is
// non-nil only if ctx is canceled.
func Probe(ctx context.Context, paths []string, workers int) ([]Info, []Failure, error) {
	infos := make([]Info, len(paths))
	errs := make([]error, len(paths))
	err := forEach(ctx, len(paths), workers, func(i int) {
		infos[i], errs[i] = ProbeFile(paths[i])
	})
	if err != nil {
		return nil, nil, err
	}

	var ok []Info
	var failed []Failure
	for i := range paths {
		if errs[i] != nil {
			failed = append(failed, Failure{Index: i, Path: paths[i], Err: errs[i]})
			continue
		}
		ok = append(ok, infos[i])
	}
	return ok, failed, nil
}

// ProbeFile reads the header of a single image.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, decodeError(path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return Info{}, decodeError(path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, errors.New(errors.ErrCodeImageDecode, "%s: empty image", filepath.Base(path))
	}

	info := Info{
		Path:   path,
		Name:   filepath.Base(path),
		Format: format,
		Size:   layout.Size{Width: cfg.Width, Height: cfg.Height},
	}

	var x *exif.Exif
	if _, err := f.Seek(0, io.SeekStart); err == nil {
		x, _ = exif.Decode(f)
	}
	if swapsAxes(format, x) {
		info.Size = info.Size.Swap()
	}
	info.Taken, info.DateSource = captureDate(x, f)
	return info, nil
}

// swapsAxes reports whether the EXIF orientation transposes the image.
// Orientations 5 to 8 include a 90 degree rotation. Only JPEG is considered,
// matching the formats Decode applies the orientation to.
func swapsAxes(format string, x *exif.Exif) bool {
	if x == nil || format != "jpeg" {
		return false
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return false
	}
	o, err := tag.Int(0)
	if err != nil {
		return false
	}
	return o >= 5 && o <= 8
}

// captureDate prefers the EXIF DateTimeOriginal and falls back to the file
// modification time.
func captureDate(x *exif.Exif, f *os.File) (time.Time, DateSource) {
	if x != nil {
		if t, err := x.DateTime(); err == nil && !t.IsZero() {
			return t, DateEXIF
		}
	}
	if st, err := f.Stat(); err == nil {
		return st.ModTime(), DateMTime
	}
	return time.Time{}, DateMTime
}

func decodeError(path string, err error) error {
	return errors.Wrap(errors.ErrCodeImageDecode, err, "cannot decode %s", filepath.Base(path))
}
