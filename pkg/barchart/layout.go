package barchart

import "math"

const (
	// BandPadding is the share of each band step left empty between bars.
	BandPadding = 0.1

	DefaultTickCount = 10
	SmallTickCount   = 5

	TickSize    = 6
	TickPadding = 3
)

type Tick struct {
	Value    float64 `json:"value"`
	Key      string  `json:"key,omitempty"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

type Bar struct {
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ValueLabel struct {
	Key  string  `json:"key"`
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	// Inverted labels sit inside the bar end instead of after it.
	Inverted bool `json:"inverted"`
}

// Layout is the computed geometry of one chart, in coordinates relative to
// the margin-translated drawing area.
type Layout struct {
	Options     ChartOptions
	ChartWidth  float64
	ChartHeight float64
	XScale      LinearScale
	YScale      *BandScale
	ValueTicks  []Tick
	KeyTicks    []Tick
	GridLines   []Tick
	Bars        []Bar
	Labels      []ValueLabel
}

// ValueTickCount is the number of ticks requested for the value axis.
func ValueTickCount(width float64) int {
	if width < Breakpoints.SM {
		return SmallTickCount
	}
	return DefaultTickCount
}

// NewValueScale maps max(values) to 0 and 0 to chartWidth.
func NewValueScale(values []float64, chartWidth float64) LinearScale {
	maxValue := math.Inf(-1)
	for _, v := range values {
		maxValue = max(maxValue, v)
	}
	if len(values) == 0 {
		maxValue = 0
	}
	return NewLinearScale([2]float64{maxValue, 0}, [2]float64{0, chartWidth})
}

// Layout computes scales, axes, bars and value labels for data.
func (r *Renderer) Layout(data []DataPoint, options ChartOptions) *Layout {
	chartWidth := options.ChartWidth()
	chartHeight := options.ChartHeight()

	keys := make([]string, len(data))
	values := make([]float64, len(data))
	for i, d := range data {
		keys[i] = d.Key
		values[i] = d.Value
	}

	xScale := NewValueScale(values, chartWidth)
	yScale := NewBandScale(keys, [2]float64{chartHeight, 0}, BandPadding)
	bandwidth := yScale.Bandwidth()

	l := &Layout{
		Options:     options,
		ChartWidth:  chartWidth,
		ChartHeight: chartHeight,
		XScale:      xScale,
		YScale:      yScale,
	}

	for _, v := range xScale.Ticks(ValueTickCount(options.Width)) {
		pos := xScale.Scale(v)
		l.ValueTicks = append(l.ValueTicks, Tick{Value: v, Position: pos, Label: FormatSI(v)})
		l.GridLines = append(l.GridLines, Tick{Value: v, Position: pos})
	}
	for _, key := range yScale.Keys() {
		y, _ := yScale.Scale(key)
		l.KeyTicks = append(l.KeyTicks, Tick{Key: key, Position: y + bandwidth/2, Label: key})
	}

	measurer := r.measurer()
	l.Bars = make([]Bar, len(data))
	l.Labels = make([]ValueLabel, len(data))
	for i, d := range data {
		y, _ := yScale.Scale(d.Key)
		width := xScale.Scale(d.Value)
		l.Bars[i] = Bar{
			Key:    d.Key,
			Value:  d.Value,
			Y:      y,
			Width:  width,
			Height: bandwidth,
		}

		text := FormatSI(d.Value)
		offset := measurer.MeasureText(text)/2 + options.ValueLabelOffset
		label := ValueLabel{
			Key:  d.Key,
			Text: text,
			X:    width + offset,
			Y:    y + bandwidth/2,
		}
		if label.X > chartWidth {
			label.X = width - offset
			label.Inverted = true
		}
		l.Labels[i] = label
	}
	return l
}
