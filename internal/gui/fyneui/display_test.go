package fyneui

import (
	"testing"
	"time"

	"webcam-tuner/internal/logger"
	"webcam-tuner/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplay(t *testing.T, onClosed func()) *Display {
	t.Helper()
	app := test.NewTempApp(t)
	return New(app, true, logger.Nop(), onClosed)
}

func TestSliderPositions(t *testing.T) {
	test.NewTempApp(t)
	s := newSlider("C", 15)

	s.SetPos(7)
	assert.Equal(t, 7, s.GetPos())
	assert.Equal(t, 7.0, s.widget.Value)
	assert.Equal(t, "C: 7", s.label.Text)

	s.widget.SetValue(3)
	assert.Equal(t, 3, s.GetPos())
}

func TestQueuedSetPosYieldsToLaterDrag(t *testing.T) {
	test.NewTempApp(t)
	s := newSlider("Threshold", 255)
	s.SetPos(10)

	// a drag lands after SetPos(20) was queued but before it ran
	s.pos.Store(20)
	s.widget.SetValue(42)

	assert.False(t, s.apply(20))
	assert.Equal(t, 42, s.GetPos())
	assert.Equal(t, 42.0, s.widget.Value)

	assert.True(t, s.apply(42))
}

func TestBindCreatesSlidersWithParameterValues(t *testing.T) {
	d := newTestDisplay(t, nil)
	p := models.DefaultParameters()

	d.Bind(p)
	d.Activate()

	require.Len(t, d.sliders, 9)
	for _, s := range d.sliders {
		assert.True(t, s.live.Load(), s.name)
	}
	// Canny threshold slider is capped at 100 while the parameter is 127
	assert.Equal(t, 100, d.sliders[0].GetPos())
	assert.Equal(t, 127, d.sliders[3].GetPos())
}

func TestSliderMoveReachesParameters(t *testing.T) {
	d := newTestDisplay(t, nil)
	p := models.DefaultParameters()
	d.Bind(p)
	d.Activate()

	// "Binarization Type"
	d.sliders[2].widget.SetValue(3)
	moved := d.Pull()

	assert.Equal(t, []string{"imgBinarized/Binarization Type"}, moved)
	assert.Equal(t, 3, p.Mode)
}

func TestPollKey(t *testing.T) {
	d := newTestDisplay(t, nil)

	assert.Equal(t, -1, d.PollKey(time.Millisecond))

	d.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, escapeKey, d.PollKey(time.Second))

	d.window.Canvas().OnTypedRune()('q')
	assert.Equal(t, int('q'), d.PollKey(time.Second))
}

func TestPollKeyAfterClose(t *testing.T) {
	closed := false
	d := newTestDisplay(t, func() { closed = true })

	d.window.Close()

	assert.True(t, closed)
	start := time.Now()
	assert.Equal(t, -1, d.PollKey(time.Minute))
	assert.Less(t, time.Since(start), time.Second)

	d.Close()
}
