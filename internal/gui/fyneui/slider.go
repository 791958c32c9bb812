package fyneui

import (
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// slider adapts a fyne slider to binding.Slider. The position is exchanged
// through an atomic so the capture goroutine never touches the widget.
type slider struct {
	name   string
	widget *widget.Slider
	label  *widget.Label
	pos    atomic.Int64
	live   atomic.Bool
}

func newSlider(name string, max int) *slider {
	s := &slider{
		name:   name,
		widget: widget.NewSlider(0, float64(max)),
		label:  widget.NewLabel(name),
	}
	s.widget.Step = 1
	s.widget.OnChanged = func(value float64) {
		pos := int(value + 0.5)
		s.pos.Store(int64(pos))
		s.label.SetText(sliderText(s.name, pos))
	}
	return s
}

func (s *slider) GetPos() int {
	return int(s.pos.Load())
}

// SetPos may be called from any goroutine once the slider is live. Before that
// it updates the widget directly, which is only valid while the window is being
// built on the main goroutine.
func (s *slider) SetPos(pos int) {
	s.pos.Store(int64(pos))
	if !s.live.Load() {
		s.apply(pos)
		return
	}
	fyne.Do(func() { s.apply(pos) })
}

// apply moves the widget to pos unless a drag has stored a newer position
// since pos was queued.
func (s *slider) apply(pos int) bool {
	if s.pos.Load() != int64(pos) {
		return false
	}
	s.widget.SetValue(float64(pos))
	s.label.SetText(sliderText(s.name, pos))
	return true
}

func sliderText(name string, pos int) string {
	return fmt.Sprintf("%s: %d", name, pos)
}
