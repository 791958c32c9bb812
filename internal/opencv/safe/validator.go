package safe

import (
	"fmt"

	"gocv.io/x/gocv"
)

func ValidateMatForOperation(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	return ValidateDimensions(mat.Cols(), mat.Rows(), operation)
}

func ValidateColorConversion(src gocv.Mat, code gocv.ColorConversionCode) error {
	if err := ValidateMatForOperation(src, "CvtColor"); err != nil {
		return err
	}

	channels := src.Channels()

	switch code {
	case gocv.ColorBGRToGray, gocv.ColorRGBToGray, gocv.ColorBGRToRGB, gocv.ColorBGRToRGBA:
		if channels != 3 {
			return fmt.Errorf("conversion %d requires 3 channels, got %d", int(code), channels)
		}
	case gocv.ColorBGRAToGray, gocv.ColorBGRAToBGR:
		if channels != 4 {
			return fmt.Errorf("conversion %d requires 4 channels, got %d", int(code), channels)
		}
	case gocv.ColorGrayToBGR:
		if channels != 1 {
			return fmt.Errorf("conversion %d requires 1 channel, got %d", int(code), channels)
		}
	}

	return nil
}

func ValidateChannels(mat gocv.Mat, want int, operation string) error {
	if err := ValidateMatForOperation(mat, operation); err != nil {
		return err
	}

	if got := mat.Channels(); got != want {
		return fmt.Errorf("%s requires %d channel(s), got %d", operation, want, got)
	}

	return nil
}

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > 32768 || height > 32768 {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}

// ValidateOddKernel checks a neighborhood size accepted by GaussianBlur and
// AdaptiveThreshold: odd and greater than one.
func ValidateOddKernel(size int, operation string) error {
	if size <= 1 || size%2 == 0 {
		return fmt.Errorf("kernel size %d must be odd and > 1 for operation: %s", size, operation)
	}

	return nil
}

func ValidateRange(name string, value, lo, hi int, operation string) error {
	if value < lo || value > hi {
		return fmt.Errorf("%s %d out of range [%d, %d] for operation: %s", name, value, lo, hi, operation)
	}

	return nil
}
