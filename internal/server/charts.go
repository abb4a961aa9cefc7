package server

import (
	"html/template"

	"github.com/coscms/tables"

	"github.com/admpub/covid-chart/pkg/covid"
	"github.com/admpub/covid-chart/pkg/dataset"
	"github.com/admpub/covid-chart/pkg/storage"
)

// topCountriesTable lists the countries with the largest charted values.
func topCountriesTable(snapshot storage.Snapshot, n int) template.HTML {
	countries := map[string]covid.Country{}
	if snapshot.Summary != nil {
		for _, c := range snapshot.Summary.Countries {
			countries[c.CountryCode] = c
		}
	}
	table := tables.New()
	table.SetCaptionContent(`Top countries`)
	table.Head.AddRow(new(tables.Row).AddCell(tables.NewCell(`Country`), tables.NewCell(`Code`), tables.NewCell(`Total confirmed`), tables.NewCell(`Total deaths`), tables.NewCell(`New confirmed`)))
	for _, d := range dataset.Top(snapshot.Data, n) {
		c, ok := countries[d.Key]
		if !ok {
			c = covid.Country{CountryCode: d.Key, Country: d.Key}
		}
		table.Body.AddRow(new(tables.Row).AddCell(tables.NewCell(c.Country), tables.NewCell(c.CountryCode), tables.NewCell(c.TotalConfirmed), tables.NewCell(c.TotalDeaths), tables.NewCell(c.NewConfirmed)))
	}
	return template.HTML(string(table.Render()))
}

var tableStyle = `<style>
table {border-collapse: collapse;background-color: #f2f2f2;width: 100%;margin: auto;box-shadow: 1px 1px 5px rgba(0,0,0,0.3);}
table caption{color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc;text-align: left;padding: 8px;}
th {background-color: #516b91;color: white;}
tr:nth-child(odd) {background-color: #f2f2f2;}
tr:nth-child(even) {background-color: #fff;}
@media screen and (max-width: 600px) {
table {display: block;overflow-x: auto;}
th, td {display: block;width: 100%;}
}
</style>`
