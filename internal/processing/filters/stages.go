package filters

import (
	"context"

	"webcam-tuner/internal/models"
)

// Stage is one per-frame transform.
type Stage interface {
	Name() string
	Apply(ctx context.Context, f *Frame, p *models.Parameters) error
}

// DefaultStages returns the transforms in dependency order: grayscale feeds the
// blur, the blur feeds Canny, and both thresholds read grayscale.
func DefaultStages(withHistogram bool) []Stage {
	stages := []Stage{
		NewGrayscaleConverter(),
		NewGaussianFilter(),
		NewCannyDetector(),
		NewBinarizer(),
		NewAdaptiveBinarizer(),
	}
	if withHistogram {
		stages = append(stages, NewHistogramPlotter())
	}
	return stages
}
