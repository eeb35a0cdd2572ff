// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of imagepdf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("imagepdf %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
