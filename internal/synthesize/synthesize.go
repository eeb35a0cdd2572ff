// Copyright Pablo Medrano, 2026. All rights reserved.

// Package synthesize implements the second pipeline stage: each
// normalized raster becomes a single-page PDF sized to its pixel
// dimensions (one pixel per point), named through the marker rewrite
// and the unique-name allocator.
package synthesize

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/naming"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/raster"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/upscale"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// BatchResult holds the outcome of a synthesis run.
type BatchResult struct {
	Synthesized int
	Skipped     int // non-raster extensions
	Failed      int
}

// Total returns the total number of files seen.
func (r BatchResult) Total() int {
	return r.Synthesized + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed synthesis.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Folder wraps every supported raster in cfg.InputDir as a single-page
// PDF in cfg.OutputDir. When up is non-nil the enhancement operator is
// applied before the page is built. Unreadable sources are logged to w
// and skipped; the stage continues with the next file.
func Folder(cfg types.SynthesizeConfig, up upscale.Upscaler, w io.Writer) (BatchResult, error) {
	var result BatchResult

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return result, fmt.Errorf("reading input directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if raster.Classify(ext) != raster.PassThrough {
			result.Skipped++
			continue
		}

		outName, err := synthesizeFile(cfg, up, name)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "synthesized: %s -> %s\n", name, outName)
		result.Synthesized++
	}

	fmt.Fprintf(w, "\nBatch summary: %d synthesized, %d skipped, %d failed (total: %d)\n",
		result.Synthesized, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// synthesizeFile builds one PDF and returns the allocated output name.
func synthesizeFile(cfg types.SynthesizeConfig, up upscale.Upscaler, name string) (string, error) {
	img, err := raster.Decode(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return "", err
	}

	var page image.Image = raster.Canonical(img)
	if up != nil {
		enhanced, err := up.Upscale(page)
		if err != nil {
			return "", fmt.Errorf("enhancing with %s: %w", up.Name(), err)
		}
		page = enhanced
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = naming.RewriteMarker(base, naming.Parenthesized)
	outName := naming.Allocate(cfg.OutputDir, base, ".pdf")

	if err := writePDF(filepath.Join(cfg.OutputDir, outName), page); err != nil {
		return "", err
	}
	return outName, nil
}

// writePDF wraps img as a one-page PDF whose page size in points equals
// the image size in pixels.
func writePDF(path string, img image.Image) error {
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: wd, Ht: ht},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	var buf bytes.Buffer
	if err := raster.EncodeJPEG(&buf, img, raster.DefaultJPEGQuality); err != nil {
		return fmt.Errorf("encoding page image: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader("page", opts, &buf)
	doc.ImageOptions("page", 0, 0, wd, ht, false, opts, 0, "")

	if doc.Err() {
		return fmt.Errorf("building PDF %s: %w", path, doc.Error())
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}
