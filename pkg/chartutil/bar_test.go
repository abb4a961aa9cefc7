package chartutil

import (
	"bytes"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/covid-chart/pkg/barchart"
)

func TestNewHorizontalBar(t *testing.T) {
	data := []barchart.DataPoint{
		{Key: `A`, Value: 10},
		{Key: `B`, Value: 90},
	}
	bar, err := NewHorizontalBar(nil, nil, `cases`, data)
	require.NoError(t, err)
	require.Len(t, bar.MultiSeries, 1)

	series := bar.MultiSeries[0]
	assert.Equal(t, `cases`, series.Name)
	items, ok := series.Data.([]opts.BarData)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, `A`, items[0].Name)
	assert.Equal(t, 90.0, items[1].Value)
}

func TestSummaryBarRender(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	data := []barchart.DataPoint{{Key: `US`, Value: 1200}}
	_, err := SummaryBar(buf, data, barchart.ChartOptions{Width: 640, Height: 480}, `2020-04-05`)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `640px`)
	assert.Contains(t, out, `480px`)
	assert.Contains(t, out, `Total confirmed`)
	assert.Contains(t, out, `"US"`)
}

func TestPx(t *testing.T) {
	assert.Equal(t, `1000px`, px(1000))
	assert.Equal(t, `12.5px`, px(12.5))
}
