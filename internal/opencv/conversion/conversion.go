package conversion

import (
	"fmt"
	"image"

	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// MatToImage converts a 1, 3 (BGR) or 4 (BGRA) channel Mat to a Go image.
func MatToImage(src gocv.Mat) (image.Image, error) {
	if err := safe.ValidateMatForOperation(src, "Mat to image conversion"); err != nil {
		return nil, err
	}

	switch src.Channels() {
	case 1, 3, 4:
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", src.Channels())
	}

	img, err := src.ToImage()
	if err != nil {
		return nil, fmt.Errorf("Mat to image conversion failed: %w", err)
	}
	return img, nil
}

// Thumbnail converts src to an image no larger than maxWidth x maxHeight,
// keeping the aspect ratio. Images that already fit are converted unscaled.
func Thumbnail(src gocv.Mat, maxWidth, maxHeight int) (image.Image, error) {
	if err := safe.ValidateMatForOperation(src, "thumbnail"); err != nil {
		return nil, err
	}

	size := FitWithin(src.Cols(), src.Rows(), maxWidth, maxHeight)
	if size.X == src.Cols() && size.Y == src.Rows() {
		return MatToImage(src)
	}

	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Resize(src, &scaled, size, 0, 0, gocv.InterpolationArea)

	return MatToImage(scaled)
}

// FitWithin returns the largest size with the aspect ratio of width x height
// that fits the bounds without upscaling. Non-positive bounds disable scaling.
func FitWithin(width, height, maxWidth, maxHeight int) image.Point {
	if maxWidth <= 0 || maxHeight <= 0 || (width <= maxWidth && height <= maxHeight) {
		return image.Point{X: width, Y: height}
	}

	scale := min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	return image.Point{
		X: max(1, int(float64(width)*scale)),
		Y: max(1, int(float64(height)*scale)),
	}
}
