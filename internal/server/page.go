package server

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/admpub/covid-chart/pkg/dom"
)

type pageData struct {
	Title      string
	Date       string
	Selector   string
	Responsive bool
	Chart      template.HTML
	Table      template.HTML
	Style      template.HTML
}

var pageTemplate = template.Must(template.New(`page`).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{.Style}}
<style>
body {font-family: sans-serif; margin: 20px;}
#summary-chart {width: 100%;}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Date}}
<p>Updated {{.Date}}</p>
{{- end}}
{{.Chart}}
{{.Table}}
{{- if .Responsive}}
<script>
(function () {
  var selector = {{.Selector}};
  var el = document.querySelector(selector);
  if (!el) return;
  var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(scheme + location.host + '/ws');
  function report() {
    var box = el.getBoundingClientRect();
    ws.send(JSON.stringify({type: 'resize', width: box.width, height: box.height}));
  }
  ws.onopen = function () {
    report();
    window.addEventListener('resize', report);
  };
  ws.onclose = function () {
    window.removeEventListener('resize', report);
  };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    var target = document.querySelector(msg.selector);
    if (!target) return;
    if (msg.type === 'clear') {
      target.innerHTML = '';
    } else if (msg.type === 'svg') {
      target.insertAdjacentHTML('beforeend', msg.svg);
    }
  };
})();
</script>
{{- end}}
</body>
</html>
`))

// handleIndex serves the summary page. Non-responsive charts are drawn into
// the container here; responsive ones are drawn over the websocket once the
// browser reports the container size.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Latest()
	if err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	opts := s.chartOptions()
	selector := s.Config.Selector
	page := pageData{
		Title:      `COVID-19 total confirmed cases by country`,
		Selector:   selector,
		Responsive: opts.Responsive,
		Table:      topCountriesTable(snapshot, s.Config.TopCountries),
		Style:      template.HTML(tableStyle),
	}
	if snapshot.Summary != nil {
		page.Date = snapshot.Summary.Date
		if updated, err := snapshot.Summary.UpdatedAt(); err == nil {
			page.Date = updated.UTC().Format(time.RFC1123)
		}
	}

	doc := dom.New()
	if opts.Responsive {
		page.Chart = doc.Add(selector, 0, 0).HTML()
	} else {
		resolved := opts.Resolve()
		elem := doc.Add(selector, resolved.Width, resolved.Height)
		if _, err = s.Controller.Draw(snapshot.Data, doc, selector, opts, nil); err != nil {
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
		page.Chart = elem.HTML()
	}

	buf := bytes.NewBuffer(nil)
	if err = pageTemplate.Execute(buf, page); err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.HTML(w, r, buf.String())
}
