package io

import (
	"context"
	"image"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/collage/pkg/errors"
)

func TestDecodeAllOrderAndTransform(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png"} {
		paths = append(paths, writePNG(t, dir, name, 10+i, 5))
	}

	imgs, failed, err := DecodeAll(context.Background(), paths, 3, func(i int, img image.Image) (image.Image, error) {
		return imaging.Resize(img, i+1, 1, imaging.NearestNeighbor), nil
	})
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if len(failed) != 0 {
		t.Fatalf("DecodeAll() failures = %v", failed)
	}
	for i, img := range imgs {
		if got := img.Bounds().Dx(); got != i+1 {
			t.Errorf("imgs[%d] width = %d, want %d", i, got, i+1)
		}
	}
}

func TestDecodeAllFailures(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "a.png", 4, 4),
		writeFile(t, dir, "b.png", "truncated"),
	}

	imgs, failed, err := DecodeAll(context.Background(), paths, 1, nil)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if imgs[0] == nil || imgs[1] != nil {
		t.Errorf("DecodeAll() = %v, want [image, nil]", imgs)
	}
	if len(failed) != 1 || failed[0].Index != 1 {
		t.Fatalf("DecodeAll() failures = %+v, want index 1", failed)
	}
	if !errors.Is(failed[0].Err, errors.ErrCodeImageDecode) {
		t.Errorf("failure error = %v, want IMAGE_DECODE_FAILURE", failed[0].Err)
	}
}

func TestDecodeAllTransformError(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writePNG(t, dir, "a.png", 4, 4)}
	boom := errors.New(errors.ErrCodeInternal, "boom")

	imgs, failed, err := DecodeAll(context.Background(), paths, 1, func(int, image.Image) (image.Image, error) {
		return nil, boom
	})
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if imgs[0] != nil || len(failed) != 1 || failed[0].Err != error(boom) {
		t.Errorf("DecodeAll() = %v, %v, want transform failure", imgs, failed)
	}
}
