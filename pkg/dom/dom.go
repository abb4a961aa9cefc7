// Package dom is a minimal in-memory stand-in for a page's element tree. It
// resolves id and class selectors to elements that collect appended SVG.
package dom

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/admpub/covid-chart/pkg/barchart"
)

type Element struct {
	mu       sync.RWMutex
	selector string
	width    float64
	height   float64
	content  bytes.Buffer
}

func (e *Element) Selector() string { return e.selector }

// AppendSVG appends svg after the current content. A leading XML
// declaration is dropped since the element lives inside an HTML page.
func (e *Element) AppendSVG(svg []byte) error {
	if i := bytes.Index(svg, []byte(`<svg`)); i > 0 {
		svg = svg[i:]
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.content.Write(svg)
	return err
}

func (e *Element) Clear() error {
	e.mu.Lock()
	e.content.Reset()
	e.mu.Unlock()
	return nil
}

// Bounds is the element's rendered size.
func (e *Element) Bounds() (width float64, height float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width, e.height
}

func (e *Element) Resize(width, height float64) {
	e.mu.Lock()
	e.width = width
	e.height = height
	e.mu.Unlock()
}

func (e *Element) String() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.content.String()
}

// HTML returns the element with its content, e.g. <div id="summary-chart">.
func (e *Element) HTML() template.HTML {
	var attr string
	switch {
	case strings.HasPrefix(e.selector, `#`):
		attr = `id="` + template.HTMLEscapeString(e.selector[1:]) + `"`
	case strings.HasPrefix(e.selector, `.`):
		attr = `class="` + template.HTMLEscapeString(e.selector[1:]) + `"`
	}
	return template.HTML(`<div ` + attr + `>` + e.String() + `</div>`)
}

type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

func New() *Document {
	return &Document{elements: map[string]*Element{}}
}

// Add registers an element under selector with its rendered size.
func (d *Document) Add(selector string, width, height float64) *Element {
	e := &Element{selector: selector, width: width, height: height}
	d.mu.Lock()
	d.elements[selector] = e
	d.mu.Unlock()
	return e
}

func (d *Document) Query(selector string) (barchart.Element, error) {
	d.mu.RLock()
	e, ok := d.elements[strings.TrimSpace(selector)]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, barchart.ErrNoElement, selector)
	}
	return e, nil
}
