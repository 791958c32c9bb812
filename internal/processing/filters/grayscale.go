package filters

import (
	"context"
	"fmt"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// GrayscaleConverter converts the captured BGR image into Frame.Gray.
type GrayscaleConverter struct{}

func NewGrayscaleConverter() *GrayscaleConverter {
	return &GrayscaleConverter{}
}

func (g *GrayscaleConverter) Name() string {
	return "grayscale"
}

func (g *GrayscaleConverter) Apply(ctx context.Context, f *Frame, _ *models.Parameters) error {
	src := f.Original
	if err := safe.ValidateMatForOperation(src, "CvtColor"); err != nil {
		return fmt.Errorf("grayscale input: %w", err)
	}

	switch src.Channels() {
	case 1:
		src.CopyTo(&f.Gray)
		return nil
	case 4:
		if err := safe.ValidateColorConversion(src, gocv.ColorBGRAToGray); err != nil {
			return err
		}
		gocv.CvtColor(src, &f.Gray, gocv.ColorBGRAToGray)
		return nil
	}

	if err := safe.ValidateColorConversion(src, gocv.ColorBGRToGray); err != nil {
		return fmt.Errorf("grayscale input: %w", err)
	}

	gocv.CvtColor(src, &f.Gray, gocv.ColorBGRToGray)
	return nil
}
