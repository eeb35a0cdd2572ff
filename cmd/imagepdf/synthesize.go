// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/synthesize"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Wrap normalized rasters as single-page PDFs",
	Long: `Synthesize turns every JPG/PNG in the input folder into a one-page PDF
sized to the image dimensions, enhancing each image 3x with the ESPCN
model first. Output basenames have the multiplicity marker rewritten to
"(n COPIAS)" and receive a " (N)" suffix on collision.

The model weights must exist (default ESPCN_x3.pb); a missing weights
file aborts the stage. Unreadable sources are logged and skipped.`,
	RunE: runSynthesize,
}

func init() {
	synthesizeCmd.Flags().String("input", "", "input folder of normalized rasters (default \"producto_final/transformaciones\")")
	synthesizeCmd.Flags().String("output", "", "output folder (default \"producto_final/archivos_pdf\")")
	synthesizeCmd.Flags().String("model", "", "ESPCN weights file (default \"ESPCN_x3.pb\")")
	synthesizeCmd.Flags().String("tool", "", "external super-resolution binary")
	synthesizeCmd.Flags().Bool("skip-enhance", false, "skip the super-resolution pass")

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	cfg := types.SynthesizeConfig{
		InputDir:  dirSetting(cmd, "input", "normalized_dir", types.DefaultNormalizedDir),
		OutputDir: dirSetting(cmd, "output", "pdf_dir", types.DefaultPDFDir),
	}

	up, err := buildEnhancer(cmd)
	if err != nil {
		return err
	}

	_, err = synthesize.Folder(cfg, up, os.Stdout)
	return err
}
