package io

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG creates a solid w×h PNG at dir/name and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeJPEG creates a w×h JPEG at dir/name carrying an EXIF block with the
// given orientation and, unless empty, a DateTimeOriginal such as
// "2019:07:04 12:30:00". It returns the path.
func writeJPEG(t *testing.T, dir, name string, w, h, orientation int, taken string) string {
	t.Helper()
	var body bytes.Buffer
	if err := jpeg.Encode(&body, image.NewGray(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatal(err)
	}
	raw := body.Bytes()

	app1 := exifSegment(orientation, taken)
	out := make([]byte, 0, len(raw)+len(app1))
	out = append(out, raw[:2]...) // SOI
	out = append(out, app1...)
	out = append(out, raw[2:]...)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// exifSegment builds a big-endian APP1 segment with Orientation in IFD0 and,
// when taken is set, DateTimeOriginal in the EXIF sub-IFD.
func exifSegment(orientation int, taken string) []byte {
	be := binary.BigEndian
	entry := func(b *bytes.Buffer, tag, typ uint16, count, value uint32) {
		binary.Write(b, be, tag)
		binary.Write(b, be, typ)
		binary.Write(b, be, count)
		binary.Write(b, be, value)
	}

	var tiff bytes.Buffer
	tiff.WriteString("MM")
	binary.Write(&tiff, be, uint16(42))
	binary.Write(&tiff, be, uint32(8))

	if taken == "" {
		binary.Write(&tiff, be, uint16(1))
		entry(&tiff, 0x0112, 3, 1, uint32(orientation)<<16)
		binary.Write(&tiff, be, uint32(0))
	} else {
		const subIFD = 8 + 2 + 2*12 + 4
		const dateAt = subIFD + 2 + 12 + 4
		binary.Write(&tiff, be, uint16(2))
		entry(&tiff, 0x0112, 3, 1, uint32(orientation)<<16)
		entry(&tiff, 0x8769, 4, 1, subIFD)
		binary.Write(&tiff, be, uint32(0))

		binary.Write(&tiff, be, uint16(1))
		entry(&tiff, 0x9003, 2, uint32(len(taken)+1), dateAt)
		binary.Write(&tiff, be, uint32(0))
		tiff.WriteString(taken)
		tiff.WriteByte(0)
	}

	var seg bytes.Buffer
	seg.Write([]byte{0xFF, 0xE1})
	binary.Write(&seg, be, uint16(2+6+tiff.Len()))
	seg.WriteString("Exif\x00\x00")
	seg.Write(tiff.Bytes())
	return seg.Bytes()
}
