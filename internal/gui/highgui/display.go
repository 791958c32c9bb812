package highgui

import (
	"time"

	"webcam-tuner/internal/gui/binding"
	"webcam-tuner/internal/gui/layout"
	"webcam-tuner/internal/logger"
	"webcam-tuner/internal/models"
	"webcam-tuner/internal/processing/filters"

	"gocv.io/x/gocv"
)

// Display shows the frame outputs in OpenCV HighGUI windows. Windows and
// trackbars are created once; every method must run on the goroutine that
// created the Display.
type Display struct {
	windows map[string]*gocv.Window
	order   []string
	binder  *binding.Binder
	logger  logger.Logger
}

func New(withHistogram bool, log logger.Logger) *Display {
	d := &Display{
		windows: make(map[string]*gocv.Window),
		binder:  binding.NewBinder(),
		logger:  log,
	}
	for _, name := range layout.Windows(withHistogram) {
		w := gocv.NewWindow(name)
		w.SetWindowProperty(gocv.WindowPropertyAutosize, gocv.WindowAutosize)
		d.windows[name] = w
		d.order = append(d.order, name)
	}
	return d
}

// Bind creates the trackbars and attaches them to p.
func (d *Display) Bind(p *models.Parameters) {
	for _, ts := range layout.Trackbars(p) {
		w, ok := d.windows[ts.Window]
		if !ok {
			continue
		}
		tb := w.CreateTrackbar(ts.Name, ts.Max)
		d.binder.Bind(ts.Window+"/"+ts.Name, tb, ts.Field, ts.Max)
	}

	d.logger.Debug("HighGUI", "trackbars registered", map[string]interface{}{
		"windows":   len(d.order),
		"trackbars": d.binder.Len(),
	})
}

func (d *Display) Pull() []string {
	return d.binder.Pull()
}

func (d *Display) Push() {
	d.binder.Push()
}

func (d *Display) Show(f *filters.Frame) {
	images := layout.FrameImages(f)
	for _, name := range d.order {
		img := images[name]
		if img.Empty() {
			continue
		}
		d.windows[name].IMShow(img)
	}
}

// PollKey waits up to timeout for a key press. HighGUI only accepts whole
// milliseconds, and a zero delay would block forever.
func (d *Display) PollKey(timeout time.Duration) int {
	return d.windows[d.order[0]].WaitKey(TimeoutMillis(timeout))
}

func (d *Display) Close() {
	for _, name := range d.order {
		d.windows[name].Close()
	}
}

// TimeoutMillis converts a poll timeout to a HighGUI delay of at least 1ms.
func TimeoutMillis(timeout time.Duration) int {
	return max(1, int(timeout/time.Millisecond))
}
