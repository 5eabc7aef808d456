package chart

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
)

// stackName groups both series into one stacked bar per date
const stackName = "total"

// tooltipFormatter shows the per-date total followed by both constituents.
// The tooltip is axis-triggered, so params holds one entry per series.
const tooltipFormatter = `function (params) {
	var approved = 0, rejected = 0;
	params.forEach(function (p) {
		if (p.seriesIndex === 0) { approved = p.value; } else { rejected = p.value; }
	});
	return 'Total: ' + (approved + rejected) + '<br/>Approved: ' + approved + '<br/>Rejected: ' + rejected;
}`

// ECharts renders the stacked bar chart as a standalone HTML page
type ECharts struct {
	cfg *model.ChartConfig
}

var _ interfaces.ChartRenderer = (*ECharts)(nil)

// NewECharts creates an HTML chart renderer; nil cfg uses the defaults
func NewECharts(cfg *model.ChartConfig) *ECharts {
	return &ECharts{cfg: cfg.WithDefaults()}
}

// ContentType returns the MIME type of the rendered output
func (e *ECharts) ContentType() string {
	return "text/html; charset=utf-8"
}

// Build creates the bar chart for series
func (e *ECharts) Build(series *model.ChartSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: e.cfg.Title,
			Width:     fmt.Sprintf("%dpx", e.cfg.Width),
			Height:    fmt.Sprintf("%dpx", e.cfg.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: e.cfg.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "axis",
			Formatter: opts.FuncOpts(tooltipFormatter),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  0,
		}),
	)

	approved := make([]opts.BarData, 0, series.Len())
	rejected := make([]opts.BarData, 0, series.Len())
	for i := range series.Labels {
		approved = append(approved, opts.BarData{Value: series.Approved[i]})
		rejected = append(rejected, opts.BarData{Value: series.Rejected[i]})
	}

	bar.SetXAxis(series.Labels).
		AddSeries(e.cfg.ApprovedLabel, approved,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: e.cfg.ApprovedColor})).
		AddSeries(e.cfg.RejectedLabel, rejected,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: e.cfg.RejectedColor})).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{
			Stack: stackName,
		}))

	return bar
}

// Render writes the chart page for series. An empty series renders an empty chart.
func (e *ECharts) Render(ctx context.Context, w io.Writer, series *model.ChartSeries) error {
	if series == nil {
		return goerr.New("chart series is nil")
	}

	if err := e.Build(series).Render(w); err != nil {
		return goerr.Wrap(err, "failed to render echarts page")
	}
	return nil
}
