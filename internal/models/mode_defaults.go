package models

// ModeDefault is the (threshold, max value) pair applied when a binarization
// mode becomes active.
type ModeDefault struct {
	Name      string
	Threshold int
	MaxValue  int
}

// ModeDefaults is indexed by binarization mode.
var ModeDefaults = [...]ModeDefault{
	{Name: "binary", Threshold: 127, MaxValue: 255},
	{Name: "binary_inverted", Threshold: 127, MaxValue: 255},
	{Name: "truncate", Threshold: 127, MaxValue: 0},
	{Name: "to_zero", Threshold: 127, MaxValue: 0},
	{Name: "to_zero_inverted", Threshold: 127, MaxValue: 0},
}

// LookupModeDefault returns the defaults for mode, or false when mode is not a
// known binarization mode.
func LookupModeDefault(mode int) (ModeDefault, bool) {
	if mode < 0 || mode >= len(ModeDefaults) {
		return ModeDefault{}, false
	}
	return ModeDefaults[mode], true
}

// ModeName returns the table name of mode, or "unknown".
func ModeName(mode int) string {
	if d, ok := LookupModeDefault(mode); ok {
		return d.Name
	}
	return "unknown"
}

// Transition computes the effect of observing current after last. newLast is
// always current. apply is true only when the mode changed to a known mode, in
// which case defaults holds the values to write.
func Transition(current, last int) (newLast int, defaults ModeDefault, apply bool) {
	if current == last {
		return last, ModeDefault{}, false
	}
	defaults, ok := LookupModeDefault(current)
	return current, defaults, ok
}

// ModeTracker remembers the last binarization mode seen and resets Threshold and
// MaxValue once each time the mode changes.
type ModeTracker struct {
	last int
}

// NewModeTracker starts tracking from the given mode, usually the initial
// Parameters.Mode, so that startup does not count as a change.
func NewModeTracker(initial int) *ModeTracker {
	return &ModeTracker{last: initial}
}

// Last returns the most recently recorded mode.
func (t *ModeTracker) Last() int {
	return t.last
}

// Apply updates p when p.Mode differs from the recorded mode and reports
// whether p was modified. Unknown modes are recorded but leave p untouched.
func (t *ModeTracker) Apply(p *Parameters) bool {
	newLast, defaults, apply := Transition(p.Mode, t.last)
	t.last = newLast
	if !apply {
		return false
	}
	p.Threshold = defaults.Threshold
	p.MaxValue = defaults.MaxValue
	return true
}
