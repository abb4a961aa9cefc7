package barchart

// DataPoint is one bar.
type DataPoint struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Margin is the padding inside the SVG canvas reserved for the axes.
type Margin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// ChartOptions are fully resolved drawing options. Width and Height are
// expected to exceed the margin sums; nothing checks it.
type ChartOptions struct {
	Responsive       bool    `json:"responsive"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Margin           Margin  `json:"margin"`
	ValueLabelOffset float64 `json:"valueLabelOffset"`
}

// ChartWidth is the width of the drawing area inside the margins.
func (c ChartOptions) ChartWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// ChartHeight is the height of the drawing area inside the margins.
func (c ChartOptions) ChartHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

var Breakpoints = struct {
	XS, SM, MD, LG, XL float64
}{
	XS: 0,
	SM: 600,
	MD: 960,
	LG: 1280,
	XL: 1920,
}

var DefaultOptions = ChartOptions{
	Responsive: false,
	Width:      400,
	Height:     300,
	Margin: Margin{
		Top:    0,
		Bottom: 0,
		Left:   0,
		Right:  0,
	},
	ValueLabelOffset: 0,
}

// MarginOptions is the caller-supplied margin. A nil field is absent and
// falls back to the default; an explicit zero is kept.
type MarginOptions struct {
	Top    *float64 `json:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
}

// Options are the caller-supplied chart options.
type Options struct {
	Responsive       bool          `json:"responsive"`
	Width            *float64      `json:"width,omitempty"`
	Height           *float64      `json:"height,omitempty"`
	Margin           MarginOptions `json:"margin"`
	ValueLabelOffset float64       `json:"valueLabelOffset"`
}

// Float returns a pointer to v, for filling Options literals.
func Float(v float64) *float64 {
	return &v
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Resolve merges o over DefaultOptions.
func (o Options) Resolve() ChartOptions {
	return ChartOptions{
		Responsive: o.Responsive,
		Width:      valueOr(o.Width, DefaultOptions.Width),
		Height:     valueOr(o.Height, DefaultOptions.Height),
		Margin: Margin{
			Top:    valueOr(o.Margin.Top, DefaultOptions.Margin.Top),
			Bottom: valueOr(o.Margin.Bottom, DefaultOptions.Margin.Bottom),
			Left:   valueOr(o.Margin.Left, DefaultOptions.Margin.Left),
			Right:  valueOr(o.Margin.Right, DefaultOptions.Margin.Right),
		},
		ValueLabelOffset: o.ValueLabelOffset,
	}
}

// WithSize returns a copy of o with explicit dimensions.
func (o Options) WithSize(width, height float64) Options {
	o.Width = Float(width)
	o.Height = Float(height)
	return o
}
