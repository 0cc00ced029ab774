package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUpRoundsToNextMultiple(t *testing.T) {
	assert.Equal(t, 0, AlignUp(0, 4))
	assert.Equal(t, 4, AlignUp(1, 4))
	assert.Equal(t, 4, AlignUp(4, 4))
	assert.Equal(t, 8, AlignUp(5, 4))
}

func TestAlignUpZeroSizeIsNoop(t *testing.T) {
	assert.Equal(t, 7, AlignUp(7, 0))
}
