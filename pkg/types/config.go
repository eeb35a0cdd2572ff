// Copyright Pablo Medrano, 2026. All rights reserved.

// Package types holds the configuration structs shared by the pipeline
// stages and the CLI.
package types

// Well-known directory convention. The names are a documented contract
// with external tooling that inspects intermediate results; keep them
// stable.
const (
	DefaultInputDir      = "producto_inicio"
	DefaultNormalizedDir = "producto_final/transformaciones"
	DefaultPDFDir        = "producto_final/archivos_pdf"
	DefaultCorrectedDir  = "producto_final/pdf_corregidos"
)

// NormalizeConfig holds settings for the image normalization stage.
type NormalizeConfig struct {
	// InputDir is the directory of raw input rasters.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives the normalized rasters.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// JPEGQuality is the quality factor for re-encoded JPEGs (default 90).
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality"`
}

// SynthesizeConfig holds settings for the image-to-PDF synthesis stage.
type SynthesizeConfig struct {
	// InputDir is the directory of normalized rasters.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives the single-page PDFs.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CorrectConfig holds settings for the page geometry correction stage.
type CorrectConfig struct {
	// InputDir is the directory of synthesized PDFs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives the geometry-corrected PDFs.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// UpscaleConfig holds settings for the super-resolution backends.
type UpscaleConfig struct {
	// Enabled turns on upscaling during the normalization stage.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ModelPath is the weights file for the synthesis-stage model
	// (default "ESPCN_x3.pb"). Missing weights abort the stage.
	ModelPath string `json:"model_path" yaml:"model_path"`

	// ToolPath is the external super-resolution binary invoked per image.
	ToolPath string `json:"tool_path" yaml:"tool_path"`

	// Factor is the integer scale factor for the normalization-stage
	// upscaler (default 4). The synthesis-stage model is fixed at 3.
	Factor int `json:"factor" yaml:"factor"`
}

// PipelineConfig holds settings for a full three-stage run.
type PipelineConfig struct {
	// InputDir is the directory of raw input rasters.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// NormalizedDir is the stage 1 output directory (persistent mode).
	NormalizedDir string `json:"normalized_dir" yaml:"normalized_dir"`

	// PDFDir is the stage 2 output directory (persistent mode).
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// OutputDir is the final directory of geometry-corrected PDFs.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Ephemeral replaces NormalizedDir and PDFDir with temporary
	// directories removed at the end of the run.
	Ephemeral bool `json:"ephemeral" yaml:"ephemeral"`

	// JPEGQuality is passed to the normalization stage (default 90).
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality"`

	Upscale UpscaleConfig `json:"upscale" yaml:"upscale"`
}
