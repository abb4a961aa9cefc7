package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/admpub/log"
	"github.com/admpub/pp"
	"github.com/webx-top/com"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/chartctl"
	"github.com/admpub/covid-chart/pkg/config"
	"github.com/admpub/covid-chart/pkg/covid"
	"github.com/admpub/covid-chart/pkg/dataset"
	"github.com/admpub/covid-chart/pkg/dom"
	"github.com/admpub/covid-chart/pkg/storage"
)

// PageOptions are the options of the summary page chart.
var PageOptions = config.PageOptions

// DefaultOutputName is used when the output path is a directory.
const DefaultOutputName = `summary-chart.svg`

// Load fetches the summary once, derives the chart data and stores both. A
// nil field charts TotalConfirmed.
func Load(ctx context.Context, client *covid.Client, store storage.Storager, field dataset.Field) (storage.Snapshot, error) {
	summary, err := client.Summary(ctx)
	if err != nil {
		return storage.Snapshot{}, err
	}
	log.Debugf(`summary: %s`, pp.Sprint(summary.Global))
	if field == nil {
		field = dataset.TotalConfirmed
	}
	snapshot := storage.Snapshot{
		Summary:   summary,
		Data:      dataset.FromCountries(summary.Countries, field),
		FetchedAt: time.Now(),
	}
	if err = store.Put(snapshot); err != nil {
		return snapshot, err
	}
	log.Infof(`loaded %d data points`, len(snapshot.Data))
	return snapshot, nil
}

// Loader binds Load to a configuration.
func Loader(cfg *config.Config, store storage.Storager) func(ctx context.Context) (storage.Snapshot, error) {
	client := covid.NewClient(cfg.APIOrigin)
	field := dataset.Fields[cfg.Field]
	if field == nil {
		log.Warnf(`unknown field %q, charting %s`, cfg.Field, config.DefaultField)
	}
	return func(ctx context.Context) (storage.Snapshot, error) {
		return Load(ctx, client, store, field)
	}
}

// OutputPath resolves a directory (existing, or written with a trailing
// separator) to a file inside it.
func OutputPath(path string) (string, error) {
	if len(path) == 0 {
		return DefaultOutputName, nil
	}
	switch path[len(path)-1] {
	case '/', '\\':
		com.MkdirAll(path, os.ModePerm)
		if !com.IsDir(path) {
			return ``, fmt.Errorf(`failed to create directory %s`, path)
		}
		return filepath.Join(path, DefaultOutputName), nil
	}
	if com.IsDir(path) {
		return filepath.Join(path, DefaultOutputName), nil
	}
	return path, nil
}

// RenderFile draws data once, non-responsively, into an in-memory page and
// writes the resulting SVG to path.
func RenderFile(path string, selector string, data []barchart.DataPoint, opts barchart.Options) (string, error) {
	path, err := OutputPath(path)
	if err != nil {
		return ``, err
	}
	opts.Responsive = false
	resolved := opts.Resolve()
	doc := dom.New()
	elem := doc.Add(selector, resolved.Width, resolved.Height)
	if _, err = chartctl.New(barchart.NewRenderer(nil)).Draw(data, doc, selector, opts, nil); err != nil {
		return ``, err
	}
	if err = os.WriteFile(path, []byte(elem.String()), 0644); err != nil {
		return ``, err
	}
	return path, nil
}
