package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestValidateMatForOperation(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, ValidateMatForOperation(empty, "Canny"))

	img := gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC3)
	defer img.Close()
	assert.NoError(t, ValidateMatForOperation(img, "Canny"))
}

func TestValidateColorConversion(t *testing.T) {
	bgr := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	defer bgr.Close()
	gray := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer gray.Close()

	assert.NoError(t, ValidateColorConversion(bgr, gocv.ColorBGRToGray))
	assert.Error(t, ValidateColorConversion(gray, gocv.ColorBGRToGray))
	assert.NoError(t, ValidateColorConversion(gray, gocv.ColorGrayToBGR))
}

func TestValidateChannels(t *testing.T) {
	gray := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC1)
	defer gray.Close()

	assert.NoError(t, ValidateChannels(gray, 1, "Threshold"))
	assert.Error(t, ValidateChannels(gray, 3, "CalcHist"))
}

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(640, 480, "op"))
	assert.Error(t, ValidateDimensions(0, 480, "op"))
	assert.Error(t, ValidateDimensions(40000, 10, "op"))
}

func TestValidateOddKernel(t *testing.T) {
	for _, ok := range []int{3, 5, 7, 11} {
		assert.NoError(t, ValidateOddKernel(ok, "AdaptiveThreshold"), "size %d", ok)
	}
	for _, bad := range []int{-3, 0, 1, 4} {
		assert.Error(t, ValidateOddKernel(bad, "AdaptiveThreshold"), "size %d", bad)
	}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("mode", 4, 0, 4, "Threshold"))
	assert.Error(t, ValidateRange("mode", 5, 0, 4, "Threshold"))
}
