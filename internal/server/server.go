package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/chartctl"
	"github.com/admpub/covid-chart/pkg/config"
	"github.com/admpub/covid-chart/pkg/storage"
)

// RefreshFunc fetches a new summary into the store.
type RefreshFunc func(ctx context.Context) (storage.Snapshot, error)

type Server struct {
	Config     *config.Config
	Store      storage.Storager
	Refresh    RefreshFunc
	Controller *chartctl.Controller
}

func New(cfg *config.Config, store storage.Storager, refresh RefreshFunc) *Server {
	cfg.SetDefaults()
	controller := chartctl.New(barchart.NewRenderer(nil))
	controller.Delay = cfg.ResizeDelayDuration()
	return &Server{
		Config:     cfg,
		Store:      store,
		Refresh:    refresh,
		Controller: controller,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get(`/`, s.handleIndex)
	r.Get(`/chart.svg`, s.handleChartSVG)
	r.Get(`/echarts`, s.handleEcharts)
	r.Get(`/ws`, s.handleWebsocket)
	r.Route(`/api`, func(r chi.Router) {
		r.Get(`/summary`, s.handleSummary)
		r.Post(`/refresh`, s.handleRefresh)
	})
	return r
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Config.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof(`listening on %s`, s.Config.Listen)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}

// chartOptions is a copy of the configured chart options.
func (s *Server) chartOptions() barchart.Options {
	if s.Config.Chart == nil {
		return config.PageOptions()
	}
	return *s.Config.Chart
}
