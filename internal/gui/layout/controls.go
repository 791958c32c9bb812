// Package layout describes which images and sliders the displays show.
package layout

import (
	"webcam-tuner/internal/models"
	"webcam-tuner/internal/processing/filters"

	"gocv.io/x/gocv"
)

const (
	WindowOriginal  = "imgOriginal"
	WindowCanny     = "imgCanny"
	WindowBinarized = "imgBinarized"
	WindowAdaptive  = "imgAdaptiveBinarized"
	WindowHistogram = "imgHistogram"
)

// CannySliderMax limits the Canny window sliders. The shared parameters can
// exceed it; the slider then shows its maximum.
const CannySliderMax = 100

// TrackbarSpec places one slider bound to a Parameters field.
type TrackbarSpec struct {
	Window string
	Name   string
	Field  *int
	Max    int
}

// Windows lists the windows to open, in display order.
func Windows(withHistogram bool) []string {
	names := []string{WindowOriginal, WindowCanny, WindowBinarized, WindowAdaptive}
	if withHistogram {
		names = append(names, WindowHistogram)
	}
	return names
}

// Trackbars returns the sliders for p. Threshold and MaxValue appear on both the
// Canny and the binarization windows.
func Trackbars(p *models.Parameters) []TrackbarSpec {
	return []TrackbarSpec{
		{WindowCanny, "Threshold", &p.Threshold, CannySliderMax},
		{WindowCanny, "Max Value", &p.MaxValue, CannySliderMax},

		{WindowBinarized, "Binarization Type", &p.Mode, models.ModeMax},
		{WindowBinarized, "Threshold", &p.Threshold, models.ThresholdMax},
		{WindowBinarized, "Max Value", &p.MaxValue, models.MaxValueMax},

		{WindowAdaptive, "Adaptive Method", &p.AdaptiveMethod, models.AdaptiveMethodMax},
		{WindowAdaptive, "Threshold Type", &p.AdaptiveType, models.AdaptiveTypeMax},
		{WindowAdaptive, "Block Size", &p.BlockSizeIndex, models.BlockSizeIndexMax},
		{WindowAdaptive, "C", &p.C, models.CMax},
	}
}

// FrameImages maps each window name to the frame output it shows.
func FrameImages(f *filters.Frame) map[string]gocv.Mat {
	return map[string]gocv.Mat{
		WindowOriginal:  f.Original,
		WindowCanny:     f.Edges,
		WindowBinarized: f.Binarized,
		WindowAdaptive:  f.Adaptive,
		WindowHistogram: f.Histogram,
	}
}
