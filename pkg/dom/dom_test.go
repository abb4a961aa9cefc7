package dom

import (
	"testing"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	doc := New()
	elem := doc.Add(`#summary-chart`, 640, 0)

	found, err := doc.Query(` #summary-chart `)
	require.NoError(t, err)
	assert.Same(t, elem, found)

	_, err = doc.Query(`#other`)
	assert.ErrorIs(t, err, barchart.ErrNoElement)

	w, h := elem.Bounds()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 0.0, h)
	elem.Resize(320, 200)
	w, h = elem.Bounds()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 200.0, h)
}

func TestElementContent(t *testing.T) {
	elem := New().Add(`#summary-chart`, 0, 0)
	require.NoError(t, elem.AppendSVG([]byte("<?xml version=\"1.0\"?>\n<svg></svg>\n")))
	assert.Equal(t, "<svg></svg>\n", elem.String())
	assert.Equal(t, "<div id=\"summary-chart\"><svg></svg>\n</div>", string(elem.HTML()))

	require.NoError(t, elem.Clear())
	assert.Empty(t, elem.String())
}

func TestDraw(t *testing.T) {
	doc := New()
	elem := doc.Add(`.chart`, 0, 0)
	data := []barchart.DataPoint{{Key: `A`, Value: 10}, {Key: `B`, Value: 90}}
	require.NoError(t, barchart.NewRenderer(nil).Draw(doc, `.chart`, data, barchart.DefaultOptions))
	assert.Contains(t, elem.String(), `class="bar"`)
	assert.Contains(t, string(elem.HTML()), `<div class="chart"><svg`)
}
