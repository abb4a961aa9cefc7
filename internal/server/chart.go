package server

import (
	"bytes"
	"net/http"
	"regexp"

	"github.com/go-chi/render"

	"github.com/admpub/covid-chart/pkg/chartutil"
)

// handleEcharts serves the same data as an interactive go-echarts page, with
// the top-countries table appended below the chart.
func (s *Server) handleEcharts(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Latest()
	if err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	opts := s.chartOptions().Resolve()
	var subtitle string
	if snapshot.Summary != nil {
		subtitle = snapshot.Summary.Date
	}
	buf := bytes.NewBuffer(nil)
	if _, err = chartutil.SummaryBar(buf, snapshot.Data, opts, subtitle); err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	table := topCountriesTable(snapshot, s.Config.TopCountries)
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(bodyEnd.ReplaceAll(buf.Bytes(), []byte(tableStyle+`<div class="container"><div class="item" style="width:900px">`+string(table)+`</div></div></body></html>`)))
}

var bodyEnd = regexp.MustCompile(`</body>\s*</html>\s*$`)
