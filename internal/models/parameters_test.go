package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()

	assert.Equal(t, 127, p.Threshold)
	assert.Equal(t, 255, p.MaxValue)
	assert.Equal(t, 0, p.Mode)
	assert.Equal(t, 0, p.AdaptiveMethod)
	assert.Equal(t, 0, p.AdaptiveType)
	assert.Equal(t, 0, p.BlockSizeIndex)
	assert.Equal(t, 5, p.C)
	assert.NoError(t, p.Validate())
}

func TestBlockSizeCoversEveryIndex(t *testing.T) {
	p := DefaultParameters()
	for i, want := range BlockSizes {
		p.BlockSizeIndex = i
		assert.Equal(t, want, p.BlockSize(), "index %d", i)
	}
}

func TestBlockSizeNeverOverruns(t *testing.T) {
	p := DefaultParameters()

	p.BlockSizeIndex = BlockSizeIndexMax
	assert.Equal(t, 11, p.BlockSize())

	p.BlockSizeIndex = BlockSizeIndexMax + 1
	assert.Equal(t, 11, p.BlockSize())

	p.BlockSizeIndex = -1
	assert.Equal(t, 3, p.BlockSize())
}

func TestBlockSizesAreOdd(t *testing.T) {
	for _, size := range BlockSizes {
		assert.Equal(t, 1, size%2, "block size %d", size)
		assert.Greater(t, size, 1)
	}
}

func TestClamp(t *testing.T) {
	p := &Parameters{
		Threshold:      -4,
		MaxValue:       300,
		Mode:           9,
		AdaptiveMethod: 2,
		AdaptiveType:   -1,
		BlockSizeIndex: 10,
		C:              16,
	}

	p.Clamp()

	assert.Equal(t, &Parameters{
		Threshold:      0,
		MaxValue:       255,
		Mode:           4,
		AdaptiveMethod: 1,
		AdaptiveType:   0,
		BlockSizeIndex: 3,
		C:              15,
	}, p)
	require.NoError(t, p.Validate())
}

func TestValidateReportsField(t *testing.T) {
	p := DefaultParameters()
	p.C = 40

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C 40")
}

func TestFields(t *testing.T) {
	p := DefaultParameters()
	p.Mode = 2
	p.BlockSizeIndex = 2

	fields := p.Fields()
	assert.Equal(t, "truncate", fields["mode"])
	assert.Equal(t, 7, fields["block_size"])
}
