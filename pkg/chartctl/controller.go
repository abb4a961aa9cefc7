package chartctl

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/admpub/log"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/debounce"
)

const DefaultDelay = 100 * time.Millisecond

var ErrNotContainer = errors.New(`element cannot be measured or cleared`)

// Container is an element that can be measured and emptied, as needed for
// responsive redraws.
type Container interface {
	barchart.Element
	Clear() error
	Bounds() (width float64, height float64)
}

// ResizeSource notifies subscribers when the page is resized.
type ResizeSource interface {
	OnResize(fn func()) (unsubscribe func())
}

type Controller struct {
	Renderer *barchart.Renderer
	Delay    time.Duration
}

func New(renderer *barchart.Renderer) *Controller {
	return &Controller{Renderer: renderer, Delay: DefaultDelay}
}

// Chart is one drawn chart. Responsive charts keep redrawing on resize until
// Close is called.
type Chart struct {
	mu          sync.Mutex
	renderer    *barchart.Renderer
	data        []barchart.DataPoint
	doc         barchart.Document
	query       string
	options     barchart.ChartOptions
	container   Container
	unsubscribe func()
	closed      bool
}

// Options returns the options of the last render.
func (c *Chart) Options() barchart.ChartOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options
}

// Draw resolves opts and renders data into the element matching query.
// Non-responsive charts render once. Responsive charts clear and re-measure
// the element before every render, the first one right away and the next
// ones debounced after resize notifications.
func (c *Controller) Draw(data []barchart.DataPoint, doc barchart.Document, query string, opts barchart.Options, resize ResizeSource) (*Chart, error) {
	chart := &Chart{
		renderer: c.Renderer,
		data:     data,
		doc:      doc,
		query:    query,
		options:  opts.Resolve(),
	}
	if !chart.options.Responsive {
		if err := chart.draw(); err != nil {
			return nil, err
		}
		return chart, nil
	}

	elem, err := doc.Query(query)
	if err != nil {
		return nil, err
	}
	container, ok := elem.(Container)
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrNotContainer, query)
	}
	chart.container = container
	if resize != nil {
		delay := c.Delay
		if delay <= 0 {
			delay = DefaultDelay
		}
		trigger := debounce.New(func() {
			if err := chart.Update(); err != nil {
				log.Errorf(`failed to redraw %s: %v`, query, err)
			}
		}, delay)
		chart.unsubscribe = resize.OnResize(trigger)
	}
	if err := chart.Update(); err != nil {
		chart.Close()
		return nil, err
	}
	return chart, nil
}

// Update redraws the chart. Responsive charts are cleared and re-measured
// first; a measured height of zero keeps the configured height.
func (c *Chart) Update() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if c.container == nil {
		return c.drawLocked()
	}
	if err := c.container.Clear(); err != nil {
		return err
	}
	width, height := c.container.Bounds()
	c.options.Width = width
	if height > 0 {
		c.options.Height = height
	}
	log.Debugf(`redrawing %s at %vx%v`, c.query, c.options.Width, c.options.Height)
	return c.drawLocked()
}

func (c *Chart) draw() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawLocked()
}

func (c *Chart) drawLocked() error {
	return c.renderer.Draw(c.doc, c.query, c.data, c.options)
}

// Close stops listening for resize notifications. A redraw that is already
// scheduled becomes a no-op.
func (c *Chart) Close() {
	c.mu.Lock()
	c.closed = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}
