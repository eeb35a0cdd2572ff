// Copyright Pablo Medrano, 2026. All rights reserved.

// Package raster decodes input images and produces the canonical RGB
// form consumed by the synthesis stage.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Decoder registration for the supported input formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality is the fixed quality factor for re-encoded JPEGs.
const DefaultJPEGQuality = 90

// Kind classifies an input file by extension.
type Kind int

const (
	// Unsupported files are silently skipped by the stages.
	Unsupported Kind = iota
	// Convert formats are decoded and re-encoded as JPEG.
	Convert
	// PassThrough formats keep their extension, re-encoded in place.
	PassThrough
)

// Classify maps a file extension (with leading dot, any case) to its
// handling kind. WEBP, BMP and TIFF become JPEG; JPG/JPEG/PNG are
// format-normalized under their own name.
func Classify(ext string) Kind {
	switch strings.ToLower(ext) {
	case ".webp", ".bmp", ".tif", ".tiff":
		return Convert
	case ".jpg", ".jpeg", ".png":
		return PassThrough
	default:
		return Unsupported
	}
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

// Canonical flattens img into an opaque RGB raster: any alpha channel is
// composited over white and format-specific metadata is dropped with the
// source encoding.
func Canonical(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}

// EncodeJPEG writes img as JPEG with the given quality factor.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteFile encodes img to path, choosing the codec from the path's
// extension (.png gets PNG, everything else JPEG).
func WriteFile(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	var encErr error
	if strings.EqualFold(filepath.Ext(path), ".png") {
		encErr = EncodePNG(f, img)
	} else {
		encErr = EncodeJPEG(f, img, quality)
	}
	if encErr != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, encErr)
	}
	return f.Close()
}
