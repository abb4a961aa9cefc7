package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/admpub/json5"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/covid"
	"github.com/admpub/covid-chart/pkg/storage"
)

type Config struct {
	Listen       string            `json:"listen"`
	APIOrigin    string            `json:"apiOrigin"`
	Selector     string            `json:"selector"`
	ResizeDelay  int               `json:"resizeDelay,omitempty"` // milliseconds
	Storage      string            `json:"storage,omitempty"`
	Field        string            `json:"field,omitempty"`
	TopCountries int               `json:"topCountries,omitempty"`
	Chart        *barchart.Options `json:"chart,omitempty"`
}

const (
	DefaultListen       = `:8080`
	DefaultSelector     = `#summary-chart`
	DefaultResizeDelay  = 100
	DefaultStorage      = `memory`
	DefaultField        = `TotalConfirmed`
	DefaultTopCountries = 10
)

// PageOptions are the chart options of the summary page: a tall canvas for
// one bar per country.
func PageOptions() barchart.Options {
	return barchart.Options{
		Responsive: true,
		Width:      barchart.Float(1000),
		Height:     barchart.Float(3500),
		Margin: barchart.MarginOptions{
			Top:    barchart.Float(30),
			Bottom: barchart.Float(20),
			Left:   barchart.Float(30),
			Right:  barchart.Float(20),
		},
		ValueLabelOffset: 3,
	}
}

func (c *Config) SetDefaults() {
	if len(c.Listen) == 0 {
		c.Listen = DefaultListen
	}
	if len(c.APIOrigin) == 0 {
		c.APIOrigin = covid.DefaultOrigin
	}
	if len(c.Selector) == 0 {
		c.Selector = DefaultSelector
	}
	if c.ResizeDelay <= 0 {
		c.ResizeDelay = DefaultResizeDelay
	}
	if len(c.Storage) == 0 {
		c.Storage = DefaultStorage
	}
	if len(c.Field) == 0 {
		c.Field = DefaultField
	}
	if c.TopCountries <= 0 {
		c.TopCountries = DefaultTopCountries
	}
	if c.Chart == nil {
		opts := PageOptions()
		c.Chart = &opts
	}
}

func (c *Config) ResizeDelayDuration() time.Duration {
	return time.Duration(c.ResizeDelay) * time.Millisecond
}

func (c *Config) Storager() (storage.Storager, error) {
	return storage.New(c.Storage)
}

// Default is the configuration used when no config file exists.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

func Parse(b []byte) (Config, error) {
	var config Config
	if err := json5.Unmarshal(b, &config); err != nil {
		return Config{}, err
	}
	config.SetDefaults()
	return config, nil
}

// LoadConfig reads a JSON5 config file. A missing file yields Default().
func LoadConfig(path string) (Config, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer jsonFile.Close()

	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return Config{}, err
	}
	return Parse(byteValue)
}
