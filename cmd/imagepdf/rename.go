// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/naming"
)

var renameCmd = &cobra.Command{
	Use:   "rename [folder]",
	Short: "Rewrite upscaler markers in PDF filenames",
	Long: `Rename rewrites the "-Xn_waifu2x_noise3_scale4x" marker in every PDF
basename in the folder to "n COPIAS". Names without the marker are left
alone, so running it twice changes nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

var rewrapCmd = &cobra.Command{
	Use:   "rewrap [folder]",
	Short: "Parenthesize trailing COPIAS annotations",
	Long: `Rewrap renames every file in the folder whose name ends in an
unparenthesized "n COPIAS" annotation (optionally followed by an
extension) to the "(n COPIAS)" form. Already-wrapped names are left
alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrap,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(rewrapCmd)
}

func folderArg(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func runRename(cmd *cobra.Command, args []string) error {
	folder := folderArg(args, "rename")
	n, err := naming.RenameFolder(folder, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d file(s) renamed in %s\n", n, folder)
	return nil
}

func runRewrap(cmd *cobra.Command, args []string) error {
	folder := folderArg(args, "cambio_nombre")
	n, err := naming.WrapFolder(folder, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d file(s) renamed in %s\n", n, folder)
	return nil
}
