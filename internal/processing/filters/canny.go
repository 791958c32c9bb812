package filters

import (
	"context"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// CannyDetector finds edges in Frame.Blurred. The hysteresis thresholds are
// Parameters.Threshold and Parameters.MaxValue.
type CannyDetector struct{}

func NewCannyDetector() *CannyDetector {
	return &CannyDetector{}
}

func (c *CannyDetector) Name() string {
	return "canny"
}

func (c *CannyDetector) Apply(ctx context.Context, f *Frame, p *models.Parameters) error {
	if err := safe.ValidateMatForOperation(f.Blurred, "Canny"); err != nil {
		return err
	}

	gocv.Canny(f.Blurred, &f.Edges, float32(p.Threshold), float32(p.MaxValue))
	return nil
}
