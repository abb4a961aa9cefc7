package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/covid"
)

var summary = &covid.Summary{
	Countries: []covid.Country{
		{CountryCode: `US`, TotalConfirmed: 330000, TotalDeaths: 9000},
		{CountryCode: `AD`, TotalConfirmed: 500, TotalDeaths: 20},
		{CountryCode: `AL`, TotalConfirmed: 500, TotalDeaths: 10},
		{CountryCode: `IT`, TotalConfirmed: 120000, TotalDeaths: 15000},
	},
}

func TestFromSummary(t *testing.T) {
	assert.Equal(t, []barchart.DataPoint{
		{Key: `AD`, Value: 500},
		{Key: `AL`, Value: 500},
		{Key: `IT`, Value: 120000},
		{Key: `US`, Value: 330000},
	}, FromSummary(summary))
}

func TestFromCountriesField(t *testing.T) {
	data := FromCountries(summary.Countries, Fields[`TotalDeaths`])
	assert.Equal(t, `AL`, data[0].Key)
	assert.Equal(t, `IT`, data[3].Key)
	assert.Empty(t, FromCountries(nil, TotalConfirmed))
}

func TestTop(t *testing.T) {
	data := FromSummary(summary)
	assert.Equal(t, []barchart.DataPoint{{Key: `US`, Value: 330000}, {Key: `IT`, Value: 120000}}, Top(data, 2))
	assert.Len(t, Top(data, 10), 4)
	assert.Empty(t, Top(nil, 3))
}
