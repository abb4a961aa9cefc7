package barchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWidth measures every label as 10px wide.
var fixedWidth = MeasureFunc(func(string) float64 { return 10 })

func flat(width, height float64) ChartOptions {
	return ChartOptions{Width: width, Height: height}
}

// The value scale maps max(values) to 0 and 0 to chartWidth, so a larger value
// gets a narrower bar. This is the established behavior of the chart and is
// kept deliberately.
func TestValueScaleInvertedDomain(t *testing.T) {
	values := []float64{10, 90, 45}
	s := NewValueScale(values, 400)
	assert.Equal(t, 0.0, s.Scale(90))
	assert.Equal(t, 400.0, s.Scale(0))

	prev := s.Scale(0)
	for v := 1.0; v <= 90; v++ {
		w := s.Scale(v)
		assert.Less(t, w, prev)
		prev = w
	}
}

func TestLayoutEndToEnd(t *testing.T) {
	data := []DataPoint{{Key: `A`, Value: 10}, {Key: `B`, Value: 90}}
	l := NewRenderer(fixedWidth).Layout(data, flat(400, 200))

	require.Len(t, l.Bars, 2)
	a, b := l.Bars[0], l.Bars[1]
	assert.Greater(t, a.Width, b.Width)
	assert.InDelta(t, 400*80.0/90, a.Width, 1e-9)
	assert.Equal(t, 0.0, b.Width)
	assert.Equal(t, l.YScale.Bandwidth(), a.Height)
	assert.Greater(t, a.Y, b.Y)
}

func TestLayoutCounts(t *testing.T) {
	data := make([]DataPoint, 0, 40)
	for i := 0; i < 40; i++ {
		data = append(data, DataPoint{Key: string(rune('A'+i%26)) + string(rune('0'+i/26)), Value: float64(i * 1000)})
	}
	l := NewRenderer(fixedWidth).Layout(data, flat(1000, 3500))
	assert.Len(t, l.Bars, 40)
	assert.Len(t, l.Labels, 40)
	assert.Len(t, l.KeyTicks, 40)
	for i, bar := range l.Bars {
		assert.Equal(t, l.XScale.Scale(data[i].Value), bar.Width)
		y, _ := l.YScale.Scale(data[i].Key)
		assert.Equal(t, y, bar.Y)
		assert.Equal(t, y+l.YScale.Bandwidth()/2, l.Labels[i].Y)
		assert.Equal(t, FormatSI(data[i].Value), l.Labels[i].Text)
	}
}

func TestLayoutMargins(t *testing.T) {
	data := []DataPoint{{Key: `A`, Value: 10}, {Key: `B`, Value: 90}}
	options := ChartOptions{Width: 400, Height: 200, Margin: Margin{Top: 30, Bottom: 20, Left: 30, Right: 20}}
	l := NewRenderer(fixedWidth).Layout(data, options)
	assert.Equal(t, 350.0, l.ChartWidth)
	assert.Equal(t, 150.0, l.ChartHeight)
	assert.Equal(t, [2]float64{0, 350}, l.XScale.Range)
	assert.Equal(t, [2]float64{150, 0}, l.YScale.Range())
}

func TestLabelPlacement(t *testing.T) {
	data := []DataPoint{{Key: `A`, Value: 1}, {Key: `B`, Value: 50}, {Key: `C`, Value: 100}}
	options := flat(100, 90)
	options.ValueLabelOffset = 3
	l := NewRenderer(fixedWidth).Layout(data, options)
	offset := 10.0/2 + 3

	// A: bar ends at 99, label would reach past 100 and flips inside the bar
	a := l.Labels[0]
	assert.True(t, a.Inverted)
	assert.InDelta(t, l.XScale.Scale(1)-offset, a.X, 1e-9)

	b := l.Labels[1]
	assert.False(t, b.Inverted)
	assert.InDelta(t, l.XScale.Scale(50)+offset, b.X, 1e-9)

	c := l.Labels[2]
	assert.False(t, c.Inverted)
	assert.InDelta(t, offset, c.X, 1e-9)
}

func TestLabelFlipUsesMeasuredWidth(t *testing.T) {
	data := []DataPoint{{Key: `A`, Value: 80}, {Key: `B`, Value: 100}}
	// A ends at 20 of 100
	narrow := NewRenderer(MeasureFunc(func(string) float64 { return 20 })).Layout(data, flat(100, 50))
	assert.False(t, narrow.Labels[0].Inverted)
	assert.Equal(t, 30.0, narrow.Labels[0].X)

	wide := NewRenderer(MeasureFunc(func(string) float64 { return 200 })).Layout(data, flat(100, 50))
	assert.True(t, wide.Labels[0].Inverted)
	assert.Equal(t, -80.0, wide.Labels[0].X)
}

func TestValueTickCountBreakpoint(t *testing.T) {
	assert.Equal(t, SmallTickCount, ValueTickCount(599))
	assert.Equal(t, DefaultTickCount, ValueTickCount(600))

	data := []DataPoint{{Key: `A`, Value: 10}, {Key: `B`, Value: 90}}
	small := NewRenderer(fixedWidth).Layout(data, flat(400, 200))
	large := NewRenderer(fixedWidth).Layout(data, flat(800, 200))
	assert.Less(t, len(small.ValueTicks), len(large.ValueTicks))
	assert.Equal(t, `80`, small.ValueTicks[0].Label)
	assert.Equal(t, len(small.ValueTicks), len(small.GridLines))
	for i, tick := range small.ValueTicks {
		assert.Equal(t, tick.Position, small.GridLines[i].Position)
		assert.Empty(t, small.GridLines[i].Label)
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := NewRenderer(fixedWidth).Layout(nil, flat(400, 200))
	assert.Empty(t, l.Bars)
	assert.Empty(t, l.Labels)
	assert.Equal(t, []float64{0}, l.XScale.Ticks(10))
}

func TestDefaultMeasurer(t *testing.T) {
	m := NewFaceMeasurer(nil)
	assert.Equal(t, 28.0, m.MeasureText(`1.2k`))
	assert.Equal(t, 0.0, m.MeasureText(``))
}
