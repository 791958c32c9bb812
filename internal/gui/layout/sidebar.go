package layout

import "fyne.io/fyne/v2"

// SidebarLayout gives the last object a fixed-width column on the right and
// stretches the first object over the remaining width.
type SidebarLayout struct {
	sidebarWidth float32
	padding      float32
}

func NewSidebarLayout(sidebarWidth, padding float32) *SidebarLayout {
	return &SidebarLayout{
		sidebarWidth: sidebarWidth,
		padding:      padding,
	}
}

func (sl *SidebarLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	if len(objects) == 1 {
		objects[0].Resize(containerSize)
		objects[0].Move(fyne.NewPos(0, 0))
		return
	}

	sidebar := min(sl.sidebarWidth, containerSize.Width)
	contentWidth := max(0, containerSize.Width-sidebar-sl.padding)

	objects[0].Resize(fyne.NewSize(contentWidth, containerSize.Height))
	objects[0].Move(fyne.NewPos(0, 0))

	last := objects[len(objects)-1]
	last.Resize(fyne.NewSize(sidebar, containerSize.Height))
	last.Move(fyne.NewPos(containerSize.Width-sidebar, 0))
}

func (sl *SidebarLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	content := objects[0].MinSize()
	if len(objects) == 1 {
		return content
	}

	side := objects[len(objects)-1].MinSize()
	return fyne.NewSize(
		content.Width+sl.padding+max(sl.sidebarWidth, side.Width),
		max(content.Height, side.Height),
	)
}
