package chartutil

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/admpub/covid-chart/pkg/barchart"
)

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + `px`
}

// NewHorizontalBar builds a bar chart with one category per data point and the
// value axis running along the bottom. Categories keep the order of data, so
// an ascending data set puts the largest value on top.
func NewHorizontalBar(w io.Writer, options []charts.GlobalOpts, seriesName string, data []barchart.DataPoint) (*charts.Bar, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(options...)

	keys := make([]string, len(data))
	items := make([]opts.BarData, len(data))
	for i, d := range data {
		keys[i] = d.Key
		items[i] = opts.BarData{
			Name:  d.Key,
			Value: d.Value,
		}
	}
	bar.SetXAxis(keys)
	bar.AddSeries(seriesName, items, charts.WithLabelOpts(opts.Label{
		Show:     opts.Bool(true),
		Position: `right`,
	}))
	bar.XYReversal()

	if w != nil {
		if err := bar.Render(w); err != nil {
			return bar, err
		}
	}
	return bar, nil
}

// SummaryBar is the chart served next to the SVG rendering: same data, same
// canvas size.
func SummaryBar(w io.Writer, data []barchart.DataPoint, options barchart.ChartOptions, subtitle string) (*charts.Bar, error) {
	globals := []charts.GlobalOpts{
		Initialization(`COVID-19 summary`, Size(options.Width, options.Height)),
		Title(`Total confirmed`, subtitle),
		Tooltip(),
	}
	return NewHorizontalBar(w, globals, `TotalConfirmed`, data)
}
