package chartutil

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// https://github.com/go-echarts/examples

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:    title,
		Subtitle: subtitle,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

func Initialization(pageTitle string, options ...func(*opts.Initialization)) charts.GlobalOpts {
	option := opts.Initialization{PageTitle: pageTitle, Theme: types.ThemeWesteros}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

// Size sets the canvas size in pixels.
func Size(width, height float64) func(*opts.Initialization) {
	return func(o *opts.Initialization) {
		if width > 0 {
			o.Width = px(width)
		}
		if height > 0 {
			o.Height = px(height)
		}
	}
}

func Tooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: `axis`})
}
