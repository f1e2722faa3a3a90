package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAverage(t *testing.T) {
	assert.Equal(t, 4.0, ComputeAverage(4, 4, 4, 4, 4))
	assert.Equal(t, 3.8, ComputeAverage(5, 4, 4, 3, 3))
	assert.Equal(t, 1.8, ComputeAverage(1, 2, 2, 2, 2))
}

func TestComputeAverage_RoundsToTwoDecimals(t *testing.T) {
	// 17 / 5 = 3.4
	assert.Equal(t, 3.4, ComputeAverage(3, 3, 3, 4, 4))
	// 16 / 5 = 3.2
	assert.Equal(t, 3.2, ComputeAverage(4, 3, 3, 3, 3))
}
