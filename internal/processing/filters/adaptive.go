package filters

import (
	"context"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// AdaptiveBinarizer thresholds Frame.Gray against a local neighborhood statistic.
type AdaptiveBinarizer struct{}

func NewAdaptiveBinarizer() *AdaptiveBinarizer {
	return &AdaptiveBinarizer{}
}

func (a *AdaptiveBinarizer) Name() string {
	return "adaptive_binarize"
}

func (a *AdaptiveBinarizer) Apply(ctx context.Context, f *Frame, p *models.Parameters) error {
	if err := safe.ValidateChannels(f.Gray, 1, "AdaptiveThreshold"); err != nil {
		return err
	}
	method, typ, err := AdaptiveTypes(p)
	if err != nil {
		return err
	}
	blockSize := p.BlockSize()
	if err := safe.ValidateOddKernel(blockSize, "AdaptiveThreshold"); err != nil {
		return err
	}

	gocv.AdaptiveThreshold(f.Gray, &f.Adaptive, models.AdaptiveMaxValue, method, typ, blockSize, float32(p.C))
	return nil
}

// AdaptiveTypes resolves the adaptive method and output type selected in p.
func AdaptiveTypes(p *models.Parameters) (gocv.AdaptiveThresholdType, gocv.ThresholdType, error) {
	if err := safe.ValidateRange("adaptive method", p.AdaptiveMethod, 0, models.AdaptiveMethodMax, "AdaptiveThreshold"); err != nil {
		return 0, 0, err
	}
	if err := safe.ValidateRange("adaptive type", p.AdaptiveType, 0, models.AdaptiveTypeMax, "AdaptiveThreshold"); err != nil {
		return 0, 0, err
	}

	method := gocv.AdaptiveThresholdMean
	if p.AdaptiveMethod == 1 {
		method = gocv.AdaptiveThresholdGaussian
	}
	typ := gocv.ThresholdBinary
	if p.AdaptiveType == 1 {
		typ = gocv.ThresholdBinaryInv
	}
	return method, typ, nil
}
