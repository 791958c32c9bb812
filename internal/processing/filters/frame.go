package filters

import "gocv.io/x/gocv"

// Frame carries one captured image and every transform output derived from it.
// The output Mats are allocated once and overwritten on each frame.
type Frame struct {
	// Original is owned by the capture loop; Frame never closes it.
	Original gocv.Mat

	Gray      gocv.Mat
	Blurred   gocv.Mat
	Edges     gocv.Mat
	Binarized gocv.Mat
	Adaptive  gocv.Mat
	Histogram gocv.Mat
}

// NewFrame allocates the output Mats.
func NewFrame() *Frame {
	return &Frame{
		Gray:      gocv.NewMat(),
		Blurred:   gocv.NewMat(),
		Edges:     gocv.NewMat(),
		Binarized: gocv.NewMat(),
		Adaptive:  gocv.NewMat(),
		Histogram: gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), HistogramHeight, HistogramWidth, gocv.MatTypeCV8UC3),
	}
}

// Reset points the frame at a newly captured image.
func (f *Frame) Reset(original gocv.Mat) {
	f.Original = original
}

// Close releases the output Mats.
func (f *Frame) Close() {
	for _, m := range []*gocv.Mat{&f.Gray, &f.Blurred, &f.Edges, &f.Binarized, &f.Adaptive, &f.Histogram} {
		m.Close()
	}
}
