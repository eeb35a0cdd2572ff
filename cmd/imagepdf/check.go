// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/geometry"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/inspect"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// dimTolerance is the acceptable deviation from the target page size,
// in points.
const dimTolerance = 0.5

var checkCmd = &cobra.Command{
	Use:   "check [folder]",
	Short: "Verify that corrected PDFs match the target page geometry",
	Long: `Check reads the page dimensions of every PDF in the folder and prints
them as YAML. It exits non-zero when any page deviates from the
6.7 x 9.2 cm target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	folder := folderArg(args, types.DefaultCorrectedDir)

	files, err := inspect.Folder(folder)
	if err != nil {
		return err
	}
	if err := inspect.WriteYAML(os.Stdout, files); err != nil {
		return err
	}

	bad := 0
	for _, f := range files {
		if !f.Conforms(geometry.FinalWidth, geometry.FinalHeight, dimTolerance) {
			fmt.Fprintf(os.Stderr, "nonconforming: %s\n", f.Name)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d document(s) deviate from the target geometry", bad)
	}
	fmt.Fprintf(os.Stderr, "%d document(s) conform to %.1f x %.1f pt\n",
		len(files), geometry.FinalWidth, geometry.FinalHeight)
	return nil
}
