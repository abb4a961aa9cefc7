package barchart

import (
	"bytes"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

// Stylesheet is embedded in every rendered chart.
var Stylesheet = `.bar { fill: steelblue; }
.grid line { stroke: lightgrey; stroke-opacity: 0.7; shape-rendering: crispEdges; }
.grid path { stroke-width: 0; }
.value-label { font: 10px sans-serif; text-anchor: middle; dominant-baseline: middle; fill: #333; }
.value-label.white { fill: white; }`

const axisAttrs = `fill="none" font-size="10" font-family="sans-serif"`

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(name string, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// WriteSVG writes the chart as one <svg> document.
func (l *Layout) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	o := l.Options
	canvas.Start(o.Width, o.Height)
	canvas.Style(`text/css`, Stylesheet)
	canvas.Translate(o.Margin.Left, o.Margin.Top)

	l.writeValueAxis(canvas)
	l.writeKeyAxis(canvas)

	canvas.Group(attr(`class`, `bars`))
	for _, b := range l.Bars {
		canvas.Rect(b.X, b.Y, b.Width, b.Height, attr(`class`, `bar`), attr(`data-key`, b.Key))
	}
	canvas.Gend()

	l.writeGrid(canvas)

	canvas.Group(attr(`class`, `value-labels`))
	for _, label := range l.Labels {
		class := `value-label`
		if label.Inverted {
			class += ` white`
		}
		canvas.Text(label.X, label.Y, label.Text, attr(`class`, class), attr(`data-key`, label.Key))
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
	return ew.err
}

// writeValueAxis draws the top axis of the value scale.
func (l *Layout) writeValueAxis(canvas *svg.SVG) {
	r := l.XScale.Range
	canvas.Group(attr(`class`, `axis axis-value`), axisAttrs, attr(`text-anchor`, `middle`))
	canvas.Path(`M`+num(r[0]+0.5)+`,-`+num(TickSize)+`V0.5H`+num(r[1]+0.5)+`V-`+num(TickSize),
		attr(`class`, `domain`), attr(`stroke`, `currentColor`))
	for _, t := range l.ValueTicks {
		canvas.Group(attr(`class`, `tick`), attr(`opacity`, `1`), attr(`transform`, `translate(`+num(t.Position+0.5)+`,0)`))
		canvas.Line(0, 0, 0, -TickSize, attr(`stroke`, `currentColor`))
		canvas.Text(0, -(TickSize + TickPadding), t.Label, attr(`fill`, `currentColor`), attr(`dy`, `0em`))
		canvas.Gend()
	}
	canvas.Gend()
}

// writeKeyAxis draws the left axis of the band scale.
func (l *Layout) writeKeyAxis(canvas *svg.SVG) {
	r := l.YScale.Range()
	canvas.Group(attr(`class`, `axis axis-key`), axisAttrs, attr(`text-anchor`, `end`))
	canvas.Path(`M-`+num(TickSize)+`,`+num(r[0]+0.5)+`H0.5V`+num(r[1]+0.5)+`H-`+num(TickSize),
		attr(`class`, `domain`), attr(`stroke`, `currentColor`))
	for _, t := range l.KeyTicks {
		canvas.Group(attr(`class`, `tick`), attr(`opacity`, `1`), attr(`transform`, `translate(0,`+num(t.Position+0.5)+`)`))
		canvas.Line(0, 0, -TickSize, 0, attr(`stroke`, `currentColor`))
		canvas.Text(-(TickSize + TickPadding), 0, t.Label, attr(`fill`, `currentColor`), attr(`dy`, `0.32em`))
		canvas.Gend()
	}
	canvas.Gend()
}

// writeGrid draws unlabeled vertical lines at the value ticks. The group sits
// at the full canvas height and the lines reach up by the same amount.
func (l *Layout) writeGrid(canvas *svg.SVG) {
	height := l.Options.Height
	r := l.XScale.Range
	canvas.Group(attr(`class`, `grid`), attr(`transform`, `translate(0,`+num(height)+`)`), axisAttrs, attr(`text-anchor`, `middle`))
	canvas.Path(`M`+num(r[0]+0.5)+`,`+num(-height)+`V0.5H`+num(r[1]+0.5)+`V`+num(-height),
		attr(`class`, `domain`), attr(`stroke`, `currentColor`))
	for _, t := range l.GridLines {
		canvas.Group(attr(`class`, `tick`), attr(`opacity`, `1`), attr(`transform`, `translate(`+num(t.Position+0.5)+`,0)`))
		canvas.Line(0, 0, 0, -height, attr(`stroke`, `currentColor`))
		canvas.Text(0, TickPadding, ``, attr(`fill`, `currentColor`), attr(`dy`, `0.71em`))
		canvas.Gend()
	}
	canvas.Gend()
}

// SVG returns the chart as bytes.
func (l *Layout) SVG() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := l.WriteSVG(buf)
	return buf.Bytes(), err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	var n int
	n, e.err = e.w.Write(p)
	return n, e.err
}
