package storage

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/covid"
)

// Snapshot is one fetched summary together with the chart data derived from
// it. Snapshots are never modified after Put.
type Snapshot struct {
	Summary   *covid.Summary
	Data      []barchart.DataPoint
	FetchedAt time.Time
}

type Storager interface {
	Put(Snapshot) error
	Latest() (Snapshot, error)
	Close()
}

type Constructor func(settings *url.URL) (Storager, error)

var storagers = map[string]Constructor{}

func Register(name string, function Constructor) {
	storagers[name] = function
}

var (
	ErrUnsupported = errors.New(`unsuppored storage`)
	ErrEmpty       = errors.New(`no snapshot stored`)
)

// New creates a storager from a name such as `memory` or a URL such as
// `memory://`.
func New(name string) (Storager, error) {
	var settings *url.URL
	if u, err := url.Parse(name); err == nil && len(u.Scheme) > 0 {
		settings = u
		name = u.Scheme
	}
	fn, ok := storagers[name]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnsupported, name)
	}
	return fn(settings)
}
