// Copyright Pablo Medrano, 2026. All rights reserved.

// Package pipeline sequences the three transformation stages over their
// directory contracts: raw rasters -> normalized rasters -> single-page
// PDFs -> geometry-corrected PDFs.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/geometry"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/normalize"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/synthesize"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/upscale"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// Run executes the full pipeline. normUp (optional) enlarges images
// during normalization; synthUp (optional) is the enhancement operator
// of the synthesis stage. Per-file failures inside a stage are logged
// and survived; a stage-fatal error aborts the run. In ephemeral mode
// the two intermediate directories are temporary and removed on every
// exit path, leaving only the final output.
func Run(cfg types.PipelineConfig, normUp, synthUp upscale.Upscaler, log hclog.Logger, w io.Writer) error {
	normalizedDir := cfg.NormalizedDir
	pdfDir := cfg.PDFDir

	if cfg.Ephemeral {
		var err error
		normalizedDir, err = os.MkdirTemp("", "imagepdf-normalized-")
		if err != nil {
			return fmt.Errorf("creating staging directory: %w", err)
		}
		defer os.RemoveAll(normalizedDir)

		pdfDir, err = os.MkdirTemp("", "imagepdf-pdf-")
		if err != nil {
			return fmt.Errorf("creating staging directory: %w", err)
		}
		defer os.RemoveAll(pdfDir)

		log.Debug("using ephemeral staging", "normalized", normalizedDir, "pdf", pdfDir)
	}

	log.Info("stage 1: normalizing images", "input", cfg.InputDir, "output", normalizedDir)
	normResult, err := normalize.Folder(types.NormalizeConfig{
		InputDir:    cfg.InputDir,
		OutputDir:   normalizedDir,
		JPEGQuality: cfg.JPEGQuality,
	}, normUp, w)
	if err != nil {
		return fmt.Errorf("normalization stage: %w", err)
	}
	log.Info("stage 1 done", "converted", normResult.Converted,
		"normalized", normResult.Copied, "failed", normResult.Failed)

	log.Info("stage 2: synthesizing PDFs", "input", normalizedDir, "output", pdfDir)
	synthResult, err := synthesize.Folder(types.SynthesizeConfig{
		InputDir:  normalizedDir,
		OutputDir: pdfDir,
	}, synthUp, w)
	if err != nil {
		return fmt.Errorf("synthesis stage: %w", err)
	}
	log.Info("stage 2 done", "synthesized", synthResult.Synthesized, "failed", synthResult.Failed)

	log.Info("stage 3: correcting page geometry", "input", pdfDir, "output", cfg.OutputDir)
	corrected, err := geometry.Folder(types.CorrectConfig{
		InputDir:  pdfDir,
		OutputDir: cfg.OutputDir,
	}, w)
	if err != nil {
		return fmt.Errorf("geometry stage: %w", err)
	}
	log.Info("stage 3 done", "corrected", corrected)

	return nil
}
