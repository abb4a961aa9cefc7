package barchart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, DefaultOptions, Options{}.Resolve())
}

func TestResolveKeepsExplicitZero(t *testing.T) {
	o := Options{
		Width:  Float(0),
		Height: Float(500),
		Margin: MarginOptions{Top: Float(0), Left: Float(30)},
	}
	resolved := o.Resolve()
	assert.Equal(t, 0.0, resolved.Width)
	assert.Equal(t, 500.0, resolved.Height)
	assert.Equal(t, Margin{Top: 0, Left: 30}, resolved.Margin)
}

func TestOptionsJSONPresence(t *testing.T) {
	var o Options
	require.NoError(t, json.Unmarshal([]byte(`{"responsive":true,"height":0,"margin":{"left":30}}`), &o))
	assert.Nil(t, o.Width)
	require.NotNil(t, o.Height)
	resolved := o.Resolve()
	assert.True(t, resolved.Responsive)
	assert.Equal(t, DefaultOptions.Width, resolved.Width)
	assert.Equal(t, 0.0, resolved.Height)
	assert.Equal(t, 30.0, resolved.Margin.Left)
}

func TestChartArea(t *testing.T) {
	c := ChartOptions{Width: 1000, Height: 3500, Margin: Margin{Top: 30, Bottom: 20, Left: 30, Right: 20}}
	assert.Equal(t, 950.0, c.ChartWidth())
	assert.Equal(t, 3450.0, c.ChartHeight())

	o := Options{}.WithSize(640, 0)
	assert.Equal(t, 640.0, *o.Width)
	assert.Equal(t, 0.0, *o.Height)
}
