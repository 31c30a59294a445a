package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"mushroom-segmenter/pkg/geometry"
)

// newDistMap builds a CV_32F Mat from row-major values.
func newDistMap(vals [][]float32) gocv.Mat {
	rows, cols := len(vals), len(vals[0])
	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)
	m.SetTo(gocv.NewScalar(0, 0, 0, 0))
	for y, row := range vals {
		for x, v := range row {
			if v != 0 {
				m.SetFloatAt(y, x, v)
			}
		}
	}
	return m
}

func TestDetectPeaksSingleMaximum(t *testing.T) {
	m := newDistMap([][]float32{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{0, 1, 2, 2, 2, 1, 0},
		{0, 1, 2, 5, 2, 1, 0},
		{0, 1, 2, 2, 2, 1, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0},
	})
	defer m.Close()

	peaks := detectPeaks(m, 2, 0.5)
	require.Len(t, peaks, 1)
	assert.Equal(t, geometry.PointInt{X: 3, Y: 3}, peaks[0].Pos)
	assert.InDelta(t, 5.0, peaks[0].Value, 1e-6)
}

func TestDetectPeaksAllZero(t *testing.T) {
	m := gocv.NewMatWithSize(9, 9, gocv.MatTypeCV32F)
	defer m.Close()
	m.SetTo(gocv.NewScalar(0, 0, 0, 0))

	assert.Empty(t, detectPeaks(m, 3, 0.1))
}

func TestDetectPeaksConstantMap(t *testing.T) {
	// A map with no background seed, as an all-foreground mask produces,
	// saturates at one value and holds no local maxima.
	m := gocv.NewMatWithSize(9, 9, gocv.MatTypeCV32F)
	defer m.Close()
	m.SetTo(gocv.NewScalar(7, 0, 0, 0))

	assert.Empty(t, detectPeaks(m, 3, 0.1))
}

func TestDetectPeaksRelativeThreshold(t *testing.T) {
	vals := make([][]float32, 5)
	for i := range vals {
		vals[i] = make([]float32, 20)
	}
	vals[2][3] = 10
	vals[2][16] = 3
	m := newDistMap(vals)
	defer m.Close()

	// Floor at 0.5*10 keeps only the strong maximum.
	strong := detectPeaks(m, 2, 0.5)
	require.Len(t, strong, 1)
	assert.Equal(t, geometry.PointInt{X: 3, Y: 2}, strong[0].Pos)

	// A low floor admits both.
	both := detectPeaks(m, 2, 0.1)
	assert.Len(t, both, 2)
}

func TestDetectPeaksPlateauCollapses(t *testing.T) {
	vals := make([][]float32, 7)
	for i := range vals {
		vals[i] = make([]float32, 9)
	}
	// Two equal maxima closer than the minimum separation form a plateau
	// cluster; only the first in row-major order survives.
	vals[3][3] = 5
	vals[3][5] = 5
	m := newDistMap(vals)
	defer m.Close()

	peaks := detectPeaks(m, 3, 0.5)
	require.Len(t, peaks, 1)
	assert.Equal(t, geometry.PointInt{X: 3, Y: 3}, peaks[0].Pos)
}

func TestDetectPeaksDistantEqualMaxima(t *testing.T) {
	vals := make([][]float32, 5)
	for i := range vals {
		vals[i] = make([]float32, 16)
	}
	vals[2][2] = 5
	vals[2][13] = 5
	m := newDistMap(vals)
	defer m.Close()

	peaks := detectPeaks(m, 3, 0.5)
	require.Len(t, peaks, 2)
	assert.Equal(t, geometry.PointInt{X: 2, Y: 2}, peaks[0].Pos)
	assert.Equal(t, geometry.PointInt{X: 13, Y: 2}, peaks[1].Pos)
}

func TestEnforceSpacing(t *testing.T) {
	t.Parallel()

	peaks := []Peak{
		{Pos: geometry.PointInt{X: 10, Y: 10}, Value: 4},
		{Pos: geometry.PointInt{X: 12, Y: 10}, Value: 9},
		{Pos: geometry.PointInt{X: 40, Y: 10}, Value: 2},
	}

	kept := enforceSpacing(peaks, 5)
	require.Len(t, kept, 2)
	// Strongest first; its weaker neighbor inside the radius is dropped,
	// the distant weak peak survives.
	assert.Equal(t, geometry.PointInt{X: 12, Y: 10}, kept[0].Pos)
	assert.Equal(t, geometry.PointInt{X: 40, Y: 10}, kept[1].Pos)
}

func TestEnforceSpacingSingle(t *testing.T) {
	t.Parallel()

	peaks := []Peak{{Pos: geometry.PointInt{X: 1, Y: 1}, Value: 1}}
	assert.Equal(t, peaks, enforceSpacing(peaks, 10))
	assert.Empty(t, enforceSpacing(nil, 10))
}
