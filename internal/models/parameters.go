package models

import "fmt"

// BlockSizes lists the adaptive threshold neighborhood sizes selectable by index.
var BlockSizes = [...]int{3, 5, 7, 11}

// Parameter bounds. Every bound is inclusive.
const (
	ThresholdMax      = 255
	MaxValueMax       = 255
	ModeMax           = len(ModeDefaults) - 1
	AdaptiveMethodMax = 1
	AdaptiveTypeMax   = 1
	BlockSizeIndexMax = len(BlockSizes) - 1
	CMax              = 15

	// AdaptiveMaxValue is the value assigned to pixels passing the adaptive threshold.
	AdaptiveMaxValue = 255
)

// Parameters holds the live transform settings for one session. A single
// instance is created at startup and handed by pointer to the slider bindings,
// the mode tracker and the transform stages.
type Parameters struct {
	Threshold      int // lower Canny threshold and fixed binarization threshold
	MaxValue       int // upper Canny threshold and binarization max value
	Mode           int // binarization mode, see ModeDefaults
	AdaptiveMethod int // 0 mean, 1 gaussian
	AdaptiveType   int // 0 binary, 1 binary inverted
	BlockSizeIndex int // index into BlockSizes
	C              int // constant subtracted from the neighborhood mean
}

// DefaultParameters returns the startup values.
func DefaultParameters() *Parameters {
	return &Parameters{
		Threshold:      127,
		MaxValue:       255,
		Mode:           0,
		AdaptiveMethod: 0,
		AdaptiveType:   0,
		BlockSizeIndex: 0,
		C:              5,
	}
}

// BlockSize returns the adaptive neighborhood size selected by BlockSizeIndex.
// An out-of-range index resolves to the nearest end of BlockSizes.
func (p *Parameters) BlockSize() int {
	return BlockSizes[clamp(p.BlockSizeIndex, 0, BlockSizeIndexMax)]
}

// Clamp forces every field into its inclusive range.
func (p *Parameters) Clamp() {
	p.Threshold = clamp(p.Threshold, 0, ThresholdMax)
	p.MaxValue = clamp(p.MaxValue, 0, MaxValueMax)
	p.Mode = clamp(p.Mode, 0, ModeMax)
	p.AdaptiveMethod = clamp(p.AdaptiveMethod, 0, AdaptiveMethodMax)
	p.AdaptiveType = clamp(p.AdaptiveType, 0, AdaptiveTypeMax)
	p.BlockSizeIndex = clamp(p.BlockSizeIndex, 0, BlockSizeIndexMax)
	p.C = clamp(p.C, 0, CMax)
}

// Validate reports the first field that lies outside its range.
func (p *Parameters) Validate() error {
	checks := []struct {
		name     string
		value    int
		min, max int
	}{
		{"threshold", p.Threshold, 0, ThresholdMax},
		{"max value", p.MaxValue, 0, MaxValueMax},
		{"mode", p.Mode, 0, ModeMax},
		{"adaptive method", p.AdaptiveMethod, 0, AdaptiveMethodMax},
		{"adaptive type", p.AdaptiveType, 0, AdaptiveTypeMax},
		{"block size index", p.BlockSizeIndex, 0, BlockSizeIndexMax},
		{"C", p.C, 0, CMax},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%s %d out of range [%d, %d]", c.name, c.value, c.min, c.max)
		}
	}
	return nil
}

// Fields returns loggable key/value pairs for the current settings.
func (p *Parameters) Fields() map[string]interface{} {
	return map[string]interface{}{
		"threshold":       p.Threshold,
		"max_value":       p.MaxValue,
		"mode":            ModeName(p.Mode),
		"adaptive_method": p.AdaptiveMethod,
		"adaptive_type":   p.AdaptiveType,
		"block_size":      p.BlockSize(),
		"c":               p.C,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
