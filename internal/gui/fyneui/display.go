// Package fyneui shows the frame outputs in a single fyne window with a slider
// sidebar. The capture loop runs on its own goroutine; widgets are only touched
// inside fyne.Do.
package fyneui

import (
	"image"
	"sync"
	"time"

	"webcam-tuner/internal/gui/binding"
	"webcam-tuner/internal/gui/layout"
	"webcam-tuner/internal/logger"
	"webcam-tuner/internal/models"
	"webcam-tuner/internal/opencv/conversion"
	"webcam-tuner/internal/processing/filters"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle  = "Webcam Tuner"
	TileWidth    = 320
	TileHeight   = 240
	SidebarWidth = 280

	escapeKey = 27
)

type Display struct {
	window  fyne.Window
	tiles   map[string]*canvas.Image
	order   []string
	sidebar *fyne.Container
	sliders []*slider
	binder  *binding.Binder
	logger  logger.Logger

	keys      chan int
	closed    chan struct{}
	closeOnce sync.Once
}

// New builds the window. It must be called on the fyne main goroutine before
// the app runs. onClosed runs when the user closes the window.
func New(app fyne.App, withHistogram bool, log logger.Logger, onClosed func()) *Display {
	d := &Display{
		window:  app.NewWindow(WindowTitle),
		tiles:   make(map[string]*canvas.Image),
		sidebar: container.NewVBox(),
		binder:  binding.NewBinder(),
		logger:  log,
		keys:    make(chan int, 8),
		closed:  make(chan struct{}),
	}

	var cells []fyne.CanvasObject
	for _, name := range layout.Windows(withHistogram) {
		img := canvas.NewImageFromImage(nil)
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScaleFastest
		img.SetMinSize(fyne.NewSize(TileWidth, TileHeight))
		d.tiles[name] = img
		d.order = append(d.order, name)
		cells = append(cells, container.NewBorder(widget.NewLabel(name), nil, nil, nil, img))
	}

	grid := container.NewGridWithColumns(2, cells...)
	content := container.New(layout.NewSidebarLayout(SidebarWidth, 8), grid, container.NewVScroll(d.sidebar))
	d.window.SetContent(content)
	d.window.SetMaster()

	d.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			d.sendKey(escapeKey)
		}
	})
	d.window.Canvas().SetOnTypedRune(func(r rune) {
		d.sendKey(int(r))
	})
	d.window.SetOnClosed(func() {
		d.markClosed()
		if onClosed != nil {
			onClosed()
		}
	})

	return d
}

// Window exposes the fyne window so the caller can show it.
func (d *Display) Window() fyne.Window {
	return d.window
}

// Bind creates one slider per trackbar. Must run before the window is shown.
func (d *Display) Bind(p *models.Parameters) {
	section := ""
	for _, tb := range layout.Trackbars(p) {
		if tb.Window != section {
			section = tb.Window
			d.sidebar.Add(widget.NewLabelWithStyle(section, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		}
		s := newSlider(tb.Name, tb.Max)
		d.sidebar.Add(s.label)
		d.sidebar.Add(s.widget)
		d.sliders = append(d.sliders, s)
		d.binder.Bind(tb.Window+"/"+tb.Name, s, tb.Field, tb.Max)
	}

	d.logger.Debug("FyneUI", "sliders registered", map[string]interface{}{
		"sliders": d.binder.Len(),
	})
}

// Activate switches slider updates to fyne.Do. Call it once the app is running,
// before the capture loop starts.
func (d *Display) Activate() {
	for _, s := range d.sliders {
		s.live.Store(true)
	}
}

func (d *Display) Pull() []string {
	return d.binder.Pull()
}

func (d *Display) Push() {
	d.binder.Push()
}

// Show converts the outputs to tile-sized images on the calling goroutine and
// hands them to the UI goroutine.
func (d *Display) Show(f *filters.Frame) {
	mats := layout.FrameImages(f)
	images := make(map[string]image.Image, len(d.order))
	for _, name := range d.order {
		m := mats[name]
		if m.Empty() {
			continue
		}
		img, err := conversion.Thumbnail(m, TileWidth, TileHeight)
		if err != nil {
			d.logger.Warning("FyneUI", "frame conversion failed", map[string]interface{}{
				"tile":  name,
				"error": err.Error(),
			})
			continue
		}
		images[name] = img
	}

	fyne.Do(func() {
		for name, img := range images {
			tile := d.tiles[name]
			tile.Image = img
			tile.Refresh()
		}
	})
}

// PollKey returns the next typed key, or -1 once timeout elapses or the window
// has closed.
func (d *Display) PollKey(timeout time.Duration) int {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case key := <-d.keys:
		return key
	case <-d.closed:
		return -1
	case <-timer.C:
		return -1
	}
}

func (d *Display) Close() {
	d.markClosed()
}

func (d *Display) sendKey(key int) {
	select {
	case d.keys <- key:
	default:
	}
}

func (d *Display) markClosed() {
	d.closeOnce.Do(func() {
		close(d.closed)
	})
}
