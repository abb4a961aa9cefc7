package covid

import (
	"time"

	"github.com/araddon/dateparse"
)

// Summary is the body of GET /summary.
type Summary struct {
	ID        string    `json:"ID,omitempty"`
	Message   string    `json:"Message,omitempty"`
	Global    Global    `json:"Global"`
	Countries []Country `json:"Countries"`
	Date      string    `json:"Date"`
}

type Global struct {
	NewConfirmed   int64  `json:"NewConfirmed"`
	TotalConfirmed int64  `json:"TotalConfirmed"`
	NewDeaths      int64  `json:"NewDeaths"`
	TotalDeaths    int64  `json:"TotalDeaths"`
	NewRecovered   int64  `json:"NewRecovered"`
	TotalRecovered int64  `json:"TotalRecovered"`
	Date           string `json:"Date,omitempty"`
}

// Country is one per-country record. Only CountryCode and TotalConfirmed are
// needed for charting.
type Country struct {
	ID             string `json:"ID,omitempty"`
	Country        string `json:"Country"`
	CountryCode    string `json:"CountryCode"`
	Slug           string `json:"Slug"`
	NewConfirmed   int64  `json:"NewConfirmed"`
	TotalConfirmed int64  `json:"TotalConfirmed"`
	NewDeaths      int64  `json:"NewDeaths"`
	TotalDeaths    int64  `json:"TotalDeaths"`
	NewRecovered   int64  `json:"NewRecovered"`
	TotalRecovered int64  `json:"TotalRecovered"`
	Date           string `json:"Date"`
}

// UpdatedAt parses the summary date, which the API has published in more
// than one layout over time.
func (s *Summary) UpdatedAt() (time.Time, error) {
	date := s.Date
	if len(date) == 0 {
		date = s.Global.Date
	}
	return dateparse.ParseAny(date)
}
