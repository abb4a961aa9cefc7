package barchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearScale(t *testing.T) {
	s := NewLinearScale([2]float64{0, 10}, [2]float64{0, 100})
	assert.Equal(t, 0.0, s.Scale(0))
	assert.Equal(t, 50.0, s.Scale(5))
	assert.Equal(t, 100.0, s.Scale(10))
	assert.Equal(t, 150.0, s.Scale(15))

	collapsed := NewLinearScale([2]float64{0, 0}, [2]float64{0, 100})
	assert.Equal(t, 50.0, collapsed.Scale(0))
}

func TestTicks(t *testing.T) {
	s := NewLinearScale([2]float64{0, 10}, [2]float64{0, 100})
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, s.Ticks(10))

	reversed := NewLinearScale([2]float64{90, 0}, [2]float64{0, 400})
	assert.Equal(t, []float64{90, 80, 70, 60, 50, 40, 30, 20, 10, 0}, reversed.Ticks(10))
	assert.Equal(t, []float64{80, 60, 40, 20, 0}, reversed.Ticks(5))

	fractional := NewLinearScale([2]float64{0, 1}, [2]float64{0, 1})
	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, fractional.Ticks(5), 1e-12)

	large := NewLinearScale([2]float64{33000000, 0}, [2]float64{0, 1000})
	assert.Equal(t, []float64{30000000, 25000000, 20000000, 15000000, 10000000, 5000000, 0}, large.Ticks(10))

	assert.Equal(t, []float64{0}, NewLinearScale([2]float64{0, 0}, [2]float64{0, 1}).Ticks(10))
}

func TestBandScale(t *testing.T) {
	b := NewBandScale([]string{`a`, `b`, `c`}, [2]float64{100, 0}, 0.1)
	step := 100 / 3.1
	assert.InDelta(t, step, b.Step(), 1e-9)
	assert.InDelta(t, step*0.9, b.Bandwidth(), 1e-9)

	// the first key sits at the bottom of a reversed range
	a, ok := b.Scale(`a`)
	require.True(t, ok)
	c, _ := b.Scale(`c`)
	assert.Greater(t, a, c)
	assert.InDelta(t, step*0.1, c, 1e-9)

	_, ok = b.Scale(`missing`)
	assert.False(t, ok)
}

func TestBandScaleSpansRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 190} {
		keys := make([]string, n)
		for i := range keys {
			keys[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
		}
		height := 3450.0
		b := NewBandScale(keys, [2]float64{height, 0}, BandPadding)
		outer := b.Step() * BandPadding

		lowest, highest := height, 0.0
		starts := make([]float64, 0, n)
		for _, key := range keys {
			y, ok := b.Scale(key)
			require.True(t, ok)
			starts = append(starts, y)
			lowest = min(lowest, y)
			highest = max(highest, y+b.Bandwidth())
		}
		assert.InDelta(t, 0, lowest-outer, 1e-6, `n=%d`, n)
		assert.InDelta(t, height, highest+outer, 1e-6, `n=%d`, n)

		// slots are disjoint: consecutive bands are one step apart
		for i := 1; i < len(starts); i++ {
			assert.InDelta(t, b.Step(), starts[i-1]-starts[i], 1e-6)
			assert.Greater(t, starts[i-1], starts[i]+b.Bandwidth())
		}
	}
}

func TestBandScaleDuplicateKeys(t *testing.T) {
	b := NewBandScale([]string{`a`, `b`, `a`}, [2]float64{100, 0}, 0.1)
	assert.Equal(t, []string{`a`, `b`}, b.Keys())
}
