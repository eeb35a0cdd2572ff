// Copyright Pablo Medrano, 2026. All rights reserved.

// Package main is the entry point for the imagepdf CLI: a three-stage
// batch pipeline that turns folders of raster images into PDFs with a
// fixed page geometry, plus the standalone filename utilities.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger carries run-level diagnostics; stage status lines go to stdout.
var logger hclog.Logger = hclog.NewNullLogger()

// rootCmd is the base command for the imagepdf CLI.
var rootCmd = &cobra.Command{
	Use:   "imagepdf",
	Short: "Batch image-to-PDF transformation with fixed page geometry",
	Long: `imagepdf converts a folder of heterogeneous raster images into PDF
documents with standardized page geometry (6.7 x 9.2 cm), optionally
applying super-resolution, and normalizes output filenames per the
"(n COPIAS)" convention.

Each pipeline stage is a subcommand: normalize, synthesize, and correct.
The run subcommand executes all three in sequence; rename, rewrap, and
check are standalone utilities over existing folders.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "imagepdf",
			Level:  hclog.LevelFromString(level),
			Output: os.Stderr,
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./imagepdf.yaml or ~/.config/imagepdf/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level: trace, debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("imagepdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "imagepdf"))
		}
	}

	viper.SetEnvPrefix("IMAGEPDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
