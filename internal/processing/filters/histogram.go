package filters

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const (
	HistogramBins   = 256
	HistogramWidth  = 512
	HistogramHeight = 400
)

// channel colors in BGR split order
var histogramColors = [3]color.RGBA{
	{R: 0, G: 0, B: 255, A: 0},
	{R: 0, G: 255, B: 0, A: 0},
	{R: 255, G: 0, B: 0, A: 0},
}

var grayTraceColor = color.RGBA{R: 255, G: 255, B: 255, A: 0}

// HistogramTraces returns the trace colors for a source with the given
// channel count: one white trace for gray, one per color plane for BGR, and
// the alpha plane of BGRA is not plotted.
func HistogramTraces(channels int) ([]color.RGBA, error) {
	switch channels {
	case 1:
		return []color.RGBA{grayTraceColor}, nil
	case 3, 4:
		return histogramColors[:], nil
	}
	return nil, fmt.Errorf("CalcHist: unsupported channel count %d", channels)
}

// HistogramPlotter draws the per-channel intensity histogram of Frame.Original
// into Frame.Histogram.
type HistogramPlotter struct {
	mask gocv.Mat
	hist gocv.Mat
}

func NewHistogramPlotter() *HistogramPlotter {
	return &HistogramPlotter{
		mask: gocv.NewMat(),
		hist: gocv.NewMat(),
	}
}

func (h *HistogramPlotter) Name() string {
	return "histogram"
}

func (h *HistogramPlotter) Apply(ctx context.Context, f *Frame, _ *models.Parameters) error {
	if err := safe.ValidateMatForOperation(f.Original, "CalcHist"); err != nil {
		return err
	}
	traces, err := HistogramTraces(f.Original.Channels())
	if err != nil {
		return err
	}

	f.Histogram.SetTo(gocv.NewScalar(0, 0, 0, 0))

	planes := gocv.Split(f.Original)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()
	if len(planes) < len(traces) {
		return fmt.Errorf("split produced %d planes, want %d", len(planes), len(traces))
	}

	for i, c := range traces {
		if err := ctx.Err(); err != nil {
			return err
		}
		gocv.CalcHist([]gocv.Mat{planes[i]}, []int{0}, h.mask, &h.hist, []int{HistogramBins}, []float64{0, HistogramBins}, false)
		gocv.Normalize(h.hist, &h.hist, 0, HistogramHeight, gocv.NormMinMax)
		h.plot(&f.Histogram, c)
	}
	return nil
}

func (h *HistogramPlotter) plot(dst *gocv.Mat, c color.RGBA) {
	binWidth := HistogramWidth / HistogramBins
	prev := HistogramPoint(0, h.hist.GetFloatAt(0, 0), binWidth)
	for bin := 1; bin < HistogramBins; bin++ {
		next := HistogramPoint(bin, h.hist.GetFloatAt(bin, 0), binWidth)
		gocv.Line(dst, prev, next, c, 2)
		prev = next
	}
}

// Close releases the scratch Mats.
func (h *HistogramPlotter) Close() {
	h.mask.Close()
	h.hist.Close()
}

// HistogramPoint maps a normalized bin value onto canvas coordinates, with the
// origin at the bottom-left corner.
func HistogramPoint(bin int, value float32, binWidth int) image.Point {
	y := HistogramHeight - int(value+0.5)
	y = max(0, min(y, HistogramHeight))
	return image.Point{X: bin * binWidth, Y: y}
}
