package filters

import (
	"context"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// thresholdTypes maps binarization modes onto OpenCV threshold types.
var thresholdTypes = [...]gocv.ThresholdType{
	gocv.ThresholdBinary,
	gocv.ThresholdBinaryInv,
	gocv.ThresholdTrunc,
	gocv.ThresholdToZero,
	gocv.ThresholdToZeroInv,
}

// Binarizer applies the fixed threshold selected by Parameters.Mode to Frame.Gray.
type Binarizer struct{}

func NewBinarizer() *Binarizer {
	return &Binarizer{}
}

func (b *Binarizer) Name() string {
	return "binarize"
}

func (b *Binarizer) Apply(ctx context.Context, f *Frame, p *models.Parameters) error {
	if err := safe.ValidateChannels(f.Gray, 1, "Threshold"); err != nil {
		return err
	}
	typ, err := ThresholdTypeForMode(p.Mode)
	if err != nil {
		return err
	}

	gocv.Threshold(f.Gray, &f.Binarized, float32(p.Threshold), float32(p.MaxValue), typ)
	return nil
}

// ThresholdTypeForMode returns the OpenCV threshold type for a binarization mode.
func ThresholdTypeForMode(mode int) (gocv.ThresholdType, error) {
	if err := safe.ValidateRange("binarization mode", mode, 0, len(thresholdTypes)-1, "Threshold"); err != nil {
		return 0, err
	}
	return thresholdTypes[mode], nil
}
