// Package io reads source images from disk and writes finished collages.
//
// # Overview
//
// The package covers the file-system side of a collage run:
//
//   - [Scan] lists the supported image files of a directory in filename order
//   - [Probe] reads image headers (size, EXIF orientation, capture date) without decoding pixels
//   - [Sort] orders probed images by name or capture date
//   - [DecodeAll] decodes images concurrently and hands each one to a
//     transform on the worker goroutine
//   - [Writer] names output files and writes them atomically
//
// # Supported Formats
//
// JPEG, PNG, GIF (first frame), BMP, TIFF and WebP. Extensions are matched
// case-insensitively; hidden files are ignored.
//
// # Decode Failures
//
// A file that cannot be probed or decoded is not fatal. It is reported as a
// [Failure] carrying an IMAGE_DECODE_FAILURE error and left out of the
// results; callers decide whether what remains is enough to continue.
//
// # Ordering
//
// [Probe] and [DecodeAll] run on a bounded worker pool but always return
// results in input order, independent of completion order.
//
// # Output Names
//
// Files are named <prefix>-<YYYYMMDD>-<page><ext>. When that name is taken,
// -1, -2, ... is appended until a free name is found. Data is written to a
// temporary file in the destination directory and renamed into place, so
// an interrupted or failed write never leaves a partial collage.
package io
