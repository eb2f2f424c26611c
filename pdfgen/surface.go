package pdfgen

import (
	"context"
	"image"
	"time"
)

// Surface is the off-screen rendered representation of the markup prior to
// rasterization.
type Surface struct {
	HTML string
}

// RasterOptions control how the surface is materialized and captured.
type RasterOptions struct {
	WidthMM      float64       // physical page width the surface is laid out at
	PaddingMM    float64       // inner padding around the content
	Scale        float64       // capture scale factor
	SettleDelay  time.Duration // unconditional wait for images/fonts to lay out
	ImageTimeout time.Duration // residual async image decode budget during capture
}

// DefaultRasterOptions matches the export pipeline's fixed capture policy:
// A4 width, generous padding, 1.5x scale, 3s settle, 20s image budget.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		WidthMM:      PageWidthMM,
		PaddingMM:    20,
		Scale:        1.5,
		SettleDelay:  3 * time.Second,
		ImageTimeout: 20 * time.Second,
	}
}

// Rasterizer captures a visual surface to a single tall bitmap with a white
// background. Concrete backends are interchangeable; the pagination
// arithmetic never depends on one.
type Rasterizer interface {
	Rasterize(ctx context.Context, s Surface, opts RasterOptions) (image.Image, error)
}
