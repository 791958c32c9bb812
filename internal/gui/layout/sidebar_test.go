package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func TestSidebarLayoutPlacesSidebarRight(t *testing.T) {
	content := canvas.NewRectangle(nil)
	side := canvas.NewRectangle(nil)
	l := NewSidebarLayout(200, 10)

	l.Layout([]fyne.CanvasObject{content, side}, fyne.NewSize(1000, 600))

	assert.Equal(t, fyne.NewSize(790, 600), content.Size())
	assert.Equal(t, fyne.NewPos(0, 0), content.Position())
	assert.Equal(t, fyne.NewSize(200, 600), side.Size())
	assert.Equal(t, fyne.NewPos(800, 0), side.Position())
}

func TestSidebarLayoutNarrowContainer(t *testing.T) {
	content := canvas.NewRectangle(nil)
	side := canvas.NewRectangle(nil)

	NewSidebarLayout(300, 10).Layout([]fyne.CanvasObject{content, side}, fyne.NewSize(200, 100))

	assert.Equal(t, float32(0), content.Size().Width)
	assert.Equal(t, float32(200), side.Size().Width)
}

func TestSidebarLayoutMinSize(t *testing.T) {
	content := canvas.NewRectangle(nil)
	content.SetMinSize(fyne.NewSize(400, 300))
	side := canvas.NewRectangle(nil)
	side.SetMinSize(fyne.NewSize(100, 500))

	size := NewSidebarLayout(250, 8).MinSize([]fyne.CanvasObject{content, side})

	assert.Equal(t, fyne.NewSize(658, 500), size)
}

func TestSidebarLayoutSingleObject(t *testing.T) {
	content := canvas.NewRectangle(nil)

	NewSidebarLayout(250, 8).Layout([]fyne.CanvasObject{content}, fyne.NewSize(320, 240))

	assert.Equal(t, fyne.NewSize(320, 240), content.Size())
}
