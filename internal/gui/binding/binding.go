// Package binding mirrors on-screen slider positions into integer parameters
// and back.
package binding

// Slider is a bounded integer control. *gocv.Trackbar satisfies it.
type Slider interface {
	GetPos() int
	SetPos(pos int)
}

type bound struct {
	name   string
	slider Slider
	field  *int
	max    int
	last   int // position last read from or written to the slider
}

// Binder keeps a set of sliders in step with the fields they control. Several
// sliders may share one field.
type Binder struct {
	bindings []*bound
}

func NewBinder() *Binder {
	return &Binder{}
}

// Bind attaches slider to field. max is the slider's upper bound; the field may
// hold larger values, which the slider then shows clamped. The slider is moved to
// the field's current value immediately.
func (b *Binder) Bind(name string, slider Slider, field *int, max int) {
	bd := &bound{name: name, slider: slider, field: field, max: max}
	pos := clampPos(*field, max)
	slider.SetPos(pos)
	bd.last = pos
	b.bindings = append(b.bindings, bd)
}

// Pull copies user-moved slider positions into their fields and returns the
// names of the sliders that moved. A slider counts as moved when its position
// differs from the last position the binder saw or set.
func (b *Binder) Pull() []string {
	var moved []string
	for _, bd := range b.bindings {
		pos := bd.slider.GetPos()
		if pos == bd.last {
			continue
		}
		bd.last = pos
		*bd.field = pos
		moved = append(moved, bd.name)
	}
	return moved
}

// Push moves every slider whose shown position no longer matches its field.
func (b *Binder) Push() {
	for _, bd := range b.bindings {
		pos := clampPos(*bd.field, bd.max)
		if pos == bd.last {
			continue
		}
		bd.slider.SetPos(pos)
		bd.last = pos
	}
}

// Len returns the number of bindings.
func (b *Binder) Len() int {
	return len(b.bindings)
}

func clampPos(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
