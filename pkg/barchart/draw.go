package barchart

import (
	"errors"
	"fmt"
	"io"
)

var ErrNoElement = errors.New(`no element matches query`)

// Element is a rendering target that charts are appended to.
type Element interface {
	AppendSVG(svg []byte) error
}

// Document resolves CSS-style queries to elements.
type Document interface {
	Query(selector string) (Element, error)
}

// Renderer draws horizontal bar charts. The zero value measures label text
// with basicfont.Face7x13.
type Renderer struct {
	Measurer TextMeasurer
}

func NewRenderer(measurer TextMeasurer) *Renderer {
	return &Renderer{Measurer: measurer}
}

var defaultMeasurer = NewFaceMeasurer(nil)

func (r *Renderer) measurer() TextMeasurer {
	if r == nil || r.Measurer == nil {
		return defaultMeasurer
	}
	return r.Measurer
}

// Render writes one chart of data to w.
func (r *Renderer) Render(w io.Writer, data []DataPoint, options ChartOptions) error {
	return r.Layout(data, options).WriteSVG(w)
}

// Draw appends one chart of data to the element matching query. Existing
// content of the element is left in place.
func (r *Renderer) Draw(doc Document, query string, data []DataPoint, options ChartOptions) error {
	elem, err := doc.Query(query)
	if err != nil {
		return err
	}
	if elem == nil {
		return fmt.Errorf(`%w: %s`, ErrNoElement, query)
	}
	b, err := r.Layout(data, options).SVG()
	if err != nil {
		return err
	}
	return elem.AppendSVG(b)
}
