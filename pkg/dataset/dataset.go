package dataset

import (
	"sort"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/covid"
)

// Field picks the charted value of a country record.
type Field func(covid.Country) int64

func TotalConfirmed(c covid.Country) int64 { return c.TotalConfirmed }
func TotalDeaths(c covid.Country) int64    { return c.TotalDeaths }
func NewConfirmed(c covid.Country) int64   { return c.NewConfirmed }

var Fields = map[string]Field{
	`TotalConfirmed`: TotalConfirmed,
	`TotalDeaths`:    TotalDeaths,
	`NewConfirmed`:   NewConfirmed,
}

// FromSummary turns the country list into {CountryCode, TotalConfirmed}
// points sorted ascending by value.
func FromSummary(summary *covid.Summary) []barchart.DataPoint {
	return FromCountries(summary.Countries, TotalConfirmed)
}

// FromCountries keeps records with equal values in their original order.
func FromCountries(countries []covid.Country, field Field) []barchart.DataPoint {
	data := make([]barchart.DataPoint, 0, len(countries))
	for _, c := range countries {
		data = append(data, barchart.DataPoint{
			Key:   c.CountryCode,
			Value: float64(field(c)),
		})
	}
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Value < data[j].Value
	})
	return data
}

// Top returns the n largest points of an ascending data set, largest first.
func Top(data []barchart.DataPoint, n int) []barchart.DataPoint {
	if n > len(data) || n < 0 {
		n = len(data)
	}
	top := make([]barchart.DataPoint, 0, n)
	for i := len(data) - 1; i >= len(data)-n; i-- {
		top = append(top, data[i])
	}
	return top
}
