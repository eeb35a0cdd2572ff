// Copyright Pablo Medrano, 2026. All rights reserved.

// Package normalize implements the first pipeline stage: arbitrary
// input rasters become canonical RGB images in the stage output
// directory, optionally enlarged by a super-resolution operator.
package normalize

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/raster"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/upscale"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// BatchResult holds the outcome of a normalization run.
type BatchResult struct {
	Converted int // lossy-alternative formats re-encoded as JPEG
	Copied    int // directly-supported formats re-encoded in place
	Skipped   int // unsupported extensions
	Failed    int
}

// Total returns the total number of files seen.
func (r BatchResult) Total() int {
	return r.Converted + r.Copied + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed normalization.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Folder normalizes every raster in cfg.InputDir into cfg.OutputDir.
// WEBP/BMP/TIFF inputs are re-encoded as JPEG under the same base name;
// JPG/JPEG/PNG inputs keep their filename. When up is non-nil each
// image is enlarged before it is written. Failures are isolated at the
// file granularity: they are logged to w and the batch continues.
func Folder(cfg types.NormalizeConfig, up upscale.Upscaler, w io.Writer) (BatchResult, error) {
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
		kind := raster.Classify(ext)
		if kind == raster.Unsupported {
			result.Skipped++
			continue
		}

		outName := name
		if kind == raster.Convert {
			outName = strings.TrimSuffix(name, ext) + ".jpg"
		}

		if err := normalizeFile(cfg, up, name, outName); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			continue
		}

		if kind == raster.Convert {
			fmt.Fprintf(w, "converted: %s -> %s\n", name, outName)
			result.Converted++
		} else {
			fmt.Fprintf(w, "normalized: %s\n", name)
			result.Copied++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d normalized, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Copied, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// normalizeFile decodes, canonicalizes, optionally upscales, and
// re-encodes a single raster.
func normalizeFile(cfg types.NormalizeConfig, up upscale.Upscaler, name, outName string) error {
	img, err := raster.Decode(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return err
	}

	var canonical image.Image = raster.Canonical(img)
	if up != nil {
		enlarged, err := up.Upscale(canonical)
		if err != nil {
			return fmt.Errorf("upscaling with %s: %w", up.Name(), err)
		}
		canonical = enlarged
	}

	return raster.WriteFile(filepath.Join(cfg.OutputDir, outName), canonical, cfg.JPEGQuality)
}
