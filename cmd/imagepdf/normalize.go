// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/normalize"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize input rasters to canonical RGB images",
	Long: `Normalize converts every supported raster in the input folder into a
canonical RGB image in the output folder. WEBP, BMP and TIFF inputs are
re-encoded as JPEG (quality 90); JPG and PNG inputs are re-encoded under
their own name. With --upscale every image is enlarged 4x first.

Corrupt files are logged and skipped; the batch continues.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().String("input", "", "input folder of raw rasters (default \"producto_inicio\")")
	normalizeCmd.Flags().String("output", "", "output folder (default \"producto_final/transformaciones\")")
	normalizeCmd.Flags().Int("quality", 90, "JPEG quality factor")
	normalizeCmd.Flags().Bool("upscale", false, "apply 4x super-resolution before writing")
	normalizeCmd.Flags().String("upscaler-bin", "", "external upscaler binary (default waifu2x-ncnn-vulkan)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	quality, _ := cmd.Flags().GetInt("quality")
	cfg := types.NormalizeConfig{
		InputDir:    dirSetting(cmd, "input", "input_dir", types.DefaultInputDir),
		OutputDir:   dirSetting(cmd, "output", "normalized_dir", types.DefaultNormalizedDir),
		JPEGQuality: quality,
	}

	enabled, _ := cmd.Flags().GetBool("upscale")
	bin, _ := cmd.Flags().GetString("upscaler-bin")
	up, err := buildUpscaler(types.UpscaleConfig{Enabled: enabled, ToolPath: bin})
	if err != nil {
		return err
	}

	_, err = normalize.Folder(cfg, up, os.Stdout)
	return err
}
