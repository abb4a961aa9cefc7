package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/render"
	"github.com/webx-top/com"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/covid"
)

// handleChartSVG renders one non-responsive chart. The optional width and
// height query parameters override the configured canvas size.
func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Latest()
	if err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	opts := s.chartOptions()
	opts.Responsive = false
	query := r.URL.Query()
	for name, target := range map[string]**float64{`width`: &opts.Width, `height`: &opts.Height} {
		v := query.Get(name)
		if len(v) == 0 {
			continue
		}
		f := com.Float64(v)
		if f <= 0 {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf(`invalid %s: %q`, name, v)))
			return
		}
		*target = barchart.Float(f)
	}
	buf := bytes.NewBuffer(nil)
	if err = s.Controller.Renderer.Render(buf, snapshot.Data, opts.Resolve()); err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.Header().Set(`Content-Type`, `image/svg+xml`)
	w.Write(buf.Bytes())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Latest()
	if err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	render.JSON(w, r, snapshot.Data)
}

type refreshResponse struct {
	Count     int       `json:"count"`
	Date      string    `json:"date,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.Refresh == nil {
		render.Render(w, r, ErrInternalServerError(errors.New(`refresh is not configured`)))
		return
	}
	snapshot, err := s.Refresh(r.Context())
	if err != nil {
		log.Errorf(`refresh failed: %v`, err)
		if errors.Is(err, covid.ErrFetchFailed) {
			render.Render(w, r, ErrBadGateway(err))
		} else {
			render.Render(w, r, ErrInternalServerError(err))
		}
		return
	}
	resp := refreshResponse{Count: len(snapshot.Data), FetchedAt: snapshot.FetchedAt}
	if snapshot.Summary != nil {
		resp.Date = snapshot.Summary.Date
	}
	render.JSON(w, r, resp)
}
