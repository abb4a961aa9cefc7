package covid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/admpub/log"
	"github.com/go-chi/render"
)

const (
	DefaultOrigin = `https://api.covid19api.com`
	SummaryPath   = `/summary`
)

var ErrFetchFailed = errors.New(`failed to fetch data`)

type Client struct {
	Origin     string
	HTTPClient *http.Client
}

func NewClient(origin string) *Client {
	if len(origin) == 0 {
		origin = DefaultOrigin
	}
	return &Client{
		Origin:     strings.TrimSuffix(origin, `/`),
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) SummaryURL() string {
	return c.Origin + SummaryPath
}

// Summary issues a single GET against the summary endpoint. There is no
// retry and no timeout other than the one carried by ctx.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SummaryURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(`Accept`, `application/json`)
	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(`%w: %s`, ErrFetchFailed, resp.Status)
	}
	summary := &Summary{}
	if err = render.DecodeJSON(resp.Body, summary); err != nil {
		return nil, err
	}
	log.Debugf(`fetched %d countries from %s`, len(summary.Countries), c.SummaryURL())
	return summary, nil
}
