package io

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
)

// maxCollisions bounds the -N suffix search in Writer.Path.
const maxCollisions = 10000

// Writer saves finished collages into a directory.
type Writer struct {
	Dir     string
	Prefix  string
	Format  config.Format
	Quality int // JPEG only

	// Now supplies the date stamped into file names. Defaults to time.Now.
	Now func() time.Time
}

// NewWriter returns a Writer configured from cfg.
func NewWriter(cfg config.Collage) *Writer {
	return &Writer{
		Dir:     cfg.OutputDir,
		Prefix:  cfg.Prefix,
		Format:  cfg.Format,
		Quality: cfg.Quality,
	}
}

// Name returns the base file name for page, ignoring collisions.
func (w *Writer) Name(page int) string {
	return fmt.Sprintf("%s-%s-%d%s", w.Prefix, w.now().Format("20060102"), page, w.Format.Ext())
}

// Path returns the first unused path for page, adding -1, -2, ... to the
// base name while the candidate exists.
func (w *Writer) Path(page int) (string, error) {
	base := w.Name(page)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	candidate := filepath.Join(w.Dir, base)
	for n := 1; n <= maxCollisions; n++ {
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", errors.Wrap(errors.ErrCodeOutputWrite, err, "cannot check %s", candidate)
		}
		candidate = filepath.Join(w.Dir, fmt.Sprintf("%s-%d%s", stem, n, ext))
	}
	return "", errors.New(errors.ErrCodeOutputWrite, "no free file name for %s in %s", base, w.Dir)
}

// Write encodes img as page and returns the path written. It is Stage
// followed by Commit.
func (w *Writer) Write(img image.Image, page int) (string, error) {
	st, err := w.Stage(img, page)
	if err != nil {
		return "", err
	}
	return st.Commit()
}

// Staged is an encoded page held in a temporary file in the output
// directory until it is committed or discarded.
type Staged struct {
	Page int

	w   *Writer
	tmp string
}

// Stage encodes img into a hidden temporary file next to its final
// location. Nothing becomes visible under the output name until Commit.
func (w *Writer) Stage(img image.Image, page int) (*Staged, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "cannot create %s", w.Dir)
	}
	tmp := filepath.Join(w.Dir, "."+w.Prefix+"-"+uuid.NewString()+".tmp")
	if err := w.encodeFile(tmp, img); err != nil {
		os.Remove(tmp)
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "cannot write %s", w.Name(page))
	}
	return &Staged{Page: page, w: w, tmp: tmp}, nil
}

// Commit renames the staged file to the first free name for its page and
// returns that path. On failure the temporary file is removed.
func (s *Staged) Commit() (string, error) {
	path, err := s.w.Path(s.Page)
	if err != nil {
		s.Discard()
		return "", err
	}
	if err := os.Rename(s.tmp, path); err != nil {
		s.Discard()
		return "", errors.Wrap(errors.ErrCodeOutputWrite, err, "cannot write %s", path)
	}
	s.tmp = ""
	return path, nil
}

// Discard removes the staged file. It is a no-op after Commit.
func (s *Staged) Discard() {
	if s.tmp != "" {
		os.Remove(s.tmp)
		s.tmp = ""
	}
}

func (w *Writer) encodeFile(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, w.imagingFormat(), imaging.JPEGQuality(w.quality())); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) imagingFormat() imaging.Format {
	if w.Format == config.FormatJPEG {
		return imaging.JPEG
	}
	return imaging.PNG
}

func (w *Writer) quality() int {
	if w.Quality < 1 || w.Quality > 100 {
		return config.DefaultQuality
	}
	return w.Quality
}

func (w *Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}
