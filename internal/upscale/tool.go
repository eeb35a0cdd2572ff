// Copyright Pablo Medrano, 2026. All rights reserved.

package upscale

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/internal/raster"
)

// Default external binaries and weights. The tool is exchanged with
// through PNG files in a scratch directory; the operators themselves
// are opaque.
const (
	DefaultESPCNBin   = "dnn-superres"
	DefaultESPCNModel = "ESPCN_x3.pb"
	DefaultWaifu2xBin = "waifu2x-ncnn-vulkan"

	espcnFactor   = 3
	waifu2xNoise  = 3
	waifu2xFactor = 4
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(out))
	}
	return nil
}

// Tool runs an external super-resolution binary per image. Images are
// handed over as PNG files; the binary is invoked with the GPU path
// first and demoted to the software path for the rest of the run after
// the first device failure.
type Tool struct {
	name    string
	bin     string
	model   string // weights file path, empty when the tool bundles its own
	factor  int
	noise   int // denoise level, -1 to omit
	cpuOnly bool
	exec    executor
}

// NewESPCN creates the synthesis-stage backend: the ESPCN model at a
// fixed 3x factor. The weights file must exist; a missing file is a
// fatal startup error for the stage.
func NewESPCN(bin, modelPath string) (*Tool, error) {
	if bin == "" {
		bin = DefaultESPCNBin
	}
	if modelPath == "" {
		modelPath = DefaultESPCNModel
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("loading model weights %s: %w", modelPath, err)
	}
	return &Tool{
		name:   "espcn",
		bin:    bin,
		model:  modelPath,
		factor: espcnFactor,
		noise:  -1,
		exec:   &osExecutor{},
	}, nil
}

// NewWaifu2x creates the normalization-stage backend: waifu2x with
// noise level 3 at a fixed 4x factor. The binary bundles its own
// weights; it must be resolvable on PATH (or given as an explicit
// path), otherwise the stage cannot start.
func NewWaifu2x(bin string) (*Tool, error) {
	if bin == "" {
		bin = DefaultWaifu2xBin
	}
	ex := &osExecutor{}
	if _, err := ex.LookPath(bin); err != nil {
		return nil, fmt.Errorf("locating upscaler binary %s: %w", bin, err)
	}
	return &Tool{
		name:   "waifu2x",
		bin:    bin,
		factor: waifu2xFactor,
		noise:  waifu2xNoise,
		exec:   ex,
	}, nil
}

func (t *Tool) Name() string { return t.name }

func (t *Tool) Factor() int { return t.factor }

// Upscale writes img to a scratch PNG, runs the tool, and reads the
// enlarged result back.
func (t *Tool) Upscale(img image.Image) (image.Image, error) {
	dir, err := os.MkdirTemp("", "upscale-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	if err := raster.WriteFile(in, img, 0); err != nil {
		return nil, err
	}

	if !t.cpuOnly {
		if err := t.exec.Run(t.bin, t.args(in, out, false)...); err == nil {
			return raster.Decode(out)
		}
		// Device unavailable or GPU run failed; stay on the software
		// path for the remaining files.
		t.cpuOnly = true
	}
	if err := t.exec.Run(t.bin, t.args(in, out, true)...); err != nil {
		return nil, fmt.Errorf("running %s: %w", t.name, err)
	}
	return raster.Decode(out)
}

func (t *Tool) args(in, out string, cpu bool) []string {
	args := []string{"-i", in, "-o", out, "-s", strconv.Itoa(t.factor)}
	if t.model != "" {
		args = append(args, "-m", t.model)
	}
	if t.noise >= 0 {
		args = append(args, "-n", strconv.Itoa(t.noise))
	}
	if cpu {
		args = append(args, "-g", "-1")
	}
	return args
}
