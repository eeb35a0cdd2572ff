// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/geometry"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Rescale every PDF page to the fixed target geometry",
	Long: `Correct rewrites every PDF in the input folder so that each page is a
6.7 x 9.2 cm page holding the original content scaled into a 6.3 x 8.8 cm
box with 0.2 cm margins. Output files keep their input filename.

A malformed PDF aborts the run; geometry correction has no meaningful
partial result.`,
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().String("input", "", "input folder of PDFs (default \"producto_final/archivos_pdf\")")
	correctCmd.Flags().String("output", "", "output folder (default \"producto_final/pdf_corregidos\")")

	rootCmd.AddCommand(correctCmd)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	cfg := types.CorrectConfig{
		InputDir:  dirSetting(cmd, "input", "pdf_dir", types.DefaultPDFDir),
		OutputDir: dirSetting(cmd, "output", "output_dir", types.DefaultCorrectedDir),
	}

	_, err := geometry.Folder(cfg, os.Stdout)
	return err
}
