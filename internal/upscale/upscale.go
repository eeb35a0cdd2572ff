// Copyright Pablo Medrano, 2026. All rights reserved.

// Package upscale abstracts the super-resolution operators behind the
// Upscaler interface so the pipeline never depends on a specific
// numerical backend.
package upscale

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Upscaler is an opaque image-to-image operator that enlarges an image
// by a fixed integer factor.
type Upscaler interface {
	// Name identifies the backend in status lines and errors.
	Name() string

	// Factor returns the integer scale factor applied by Upscale.
	Factor() int

	// Upscale returns an image Factor() times larger on each axis.
	Upscale(img image.Image) (image.Image, error)
}

// Interpolator is the classical software backend: Lanczos resampling,
// no model weights, never fails. It serves as the fallback path when no
// neural backend is available.
type Interpolator struct {
	factor int
}

// NewInterpolator creates a Lanczos upscaler with the given factor.
func NewInterpolator(factor int) (*Interpolator, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale factor must be positive, got %d", factor)
	}
	return &Interpolator{factor: factor}, nil
}

func (i *Interpolator) Name() string { return "lanczos" }

func (i *Interpolator) Factor() int { return i.factor }

func (i *Interpolator) Upscale(img image.Image) (image.Image, error) {
	b := img.Bounds()
	w := uint(b.Dx() * i.factor)
	h := uint(b.Dy() * i.factor)
	return resize.Resize(w, h, img, resize.Lanczos3), nil
}
