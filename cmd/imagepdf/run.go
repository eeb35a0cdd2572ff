// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/pipeline"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full three-stage pipeline",
	Long: `Run executes normalize, synthesize, and correct in sequence, each stage
consuming the previous stage's output folder. By default the
intermediate folders are persistent and survive the run for inspection;
with --ephemeral they are temporary and removed on exit, leaving only
the corrected PDFs.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().String("input", "", "input folder of raw rasters (default \"producto_inicio\")")
	runCmd.Flags().String("normalized-dir", "", "stage 1 output folder (default \"producto_final/transformaciones\")")
	runCmd.Flags().String("pdf-dir", "", "stage 2 output folder (default \"producto_final/archivos_pdf\")")
	runCmd.Flags().String("output", "", "final output folder (default \"producto_final/pdf_corregidos\")")
	runCmd.Flags().Bool("ephemeral", false, "stage intermediates in temporary folders removed on exit")
	runCmd.Flags().Int("quality", 90, "JPEG quality factor for normalization")
	runCmd.Flags().Bool("upscale", false, "apply 4x super-resolution during normalization")
	runCmd.Flags().String("upscaler-bin", "", "external upscaler binary for --upscale")
	runCmd.Flags().String("model", "", "ESPCN weights file for synthesis (default \"ESPCN_x3.pb\")")
	runCmd.Flags().String("tool", "", "external super-resolution binary for synthesis")
	runCmd.Flags().Bool("skip-enhance", false, "skip the synthesis-stage super-resolution pass")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	quality, _ := cmd.Flags().GetInt("quality")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	if !ephemeral {
		ephemeral = viper.GetBool("ephemeral")
	}

	cfg := types.PipelineConfig{
		InputDir:      dirSetting(cmd, "input", "input_dir", types.DefaultInputDir),
		NormalizedDir: dirSetting(cmd, "normalized-dir", "normalized_dir", types.DefaultNormalizedDir),
		PDFDir:        dirSetting(cmd, "pdf-dir", "pdf_dir", types.DefaultPDFDir),
		OutputDir:     dirSetting(cmd, "output", "output_dir", types.DefaultCorrectedDir),
		Ephemeral:     ephemeral,
		JPEGQuality:   quality,
	}

	upscaleEnabled, _ := cmd.Flags().GetBool("upscale")
	upscalerBin, _ := cmd.Flags().GetString("upscaler-bin")
	normUp, err := buildUpscaler(types.UpscaleConfig{Enabled: upscaleEnabled, ToolPath: upscalerBin})
	if err != nil {
		return err
	}

	synthUp, err := buildEnhancer(cmd)
	if err != nil {
		return err
	}

	return pipeline.Run(cfg, normUp, synthUp, logger, os.Stdout)
}
