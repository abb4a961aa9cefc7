package bootstrap

import (
	"context"

	"github.com/admpub/log"

	"github.com/admpub/covid-chart/internal/server"
	"github.com/admpub/covid-chart/pkg/config"
)

// Run fetches the summary once and serves the page until ctx is done. A
// failed fetch stops it before anything is served.
func Run(ctx context.Context, cfg *config.Config) error {
	store, err := cfg.Storager()
	if err != nil {
		return err
	}
	defer store.Close()
	load := Loader(cfg, store)
	if _, err = load(ctx); err != nil {
		return err
	}
	return server.New(cfg, store, load).Start(ctx)
}

// Output fetches the summary once and writes a single chart to path.
func Output(ctx context.Context, cfg *config.Config, path string) error {
	store, err := cfg.Storager()
	if err != nil {
		return err
	}
	defer store.Close()
	snapshot, err := Loader(cfg, store)(ctx)
	if err != nil {
		return err
	}
	opts := PageOptions()
	if cfg.Chart != nil {
		opts = *cfg.Chart
	}
	path, err = RenderFile(path, cfg.Selector, snapshot.Data, opts)
	if err != nil {
		return err
	}
	log.Infof(`chart written to %s`, path)
	return nil
}
