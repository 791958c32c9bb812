package filters

import (
	"context"
	"image"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const (
	BlurKernelSize = 5
	BlurSigma      = 1.8
)

// GaussianFilter smooths Frame.Gray into Frame.Blurred ahead of edge detection.
type GaussianFilter struct {
	kernelSize int
	sigma      float64
}

func NewGaussianFilter() *GaussianFilter {
	return &GaussianFilter{kernelSize: BlurKernelSize, sigma: BlurSigma}
}

func (g *GaussianFilter) Name() string {
	return "gaussian_blur"
}

func (g *GaussianFilter) Apply(ctx context.Context, f *Frame, _ *models.Parameters) error {
	if err := safe.ValidateMatForOperation(f.Gray, "GaussianBlur"); err != nil {
		return err
	}
	if err := safe.ValidateOddKernel(g.kernelSize, "GaussianBlur"); err != nil {
		return err
	}

	ksize := image.Point{X: g.kernelSize, Y: g.kernelSize}
	gocv.GaussianBlur(f.Gray, &f.Blurred, ksize, g.sigma, g.sigma, gocv.BorderDefault)
	return nil
}
