// Copyright Pablo Medrano, 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/upscale"
	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// dirSetting resolves a directory option: explicit flag, then config
// file / environment, then the documented default.
func dirSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// buildEnhancer constructs the synthesis-stage super-resolution
// operator unless it is disabled. A missing weights file is a fatal
// startup error for the stage.
func buildEnhancer(cmd *cobra.Command) (upscale.Upscaler, error) {
	if skip, _ := cmd.Flags().GetBool("skip-enhance"); skip {
		return nil, nil
	}
	tool, _ := cmd.Flags().GetString("tool")
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("upscale.model_path")
	}
	return upscale.NewESPCN(tool, model)
}

// buildUpscaler constructs the optional normalization-stage upscaler:
// the external waifu2x tool when resolvable, otherwise the software
// interpolation path.
func buildUpscaler(cfg types.UpscaleConfig) (upscale.Upscaler, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	up, err := upscale.NewWaifu2x(cfg.ToolPath)
	if err == nil {
		return up, nil
	}
	logger.Warn("neural upscaler unavailable, using interpolation", "error", err)

	factor := cfg.Factor
	if factor == 0 {
		factor = 4
	}
	return upscale.NewInterpolator(factor)
}
