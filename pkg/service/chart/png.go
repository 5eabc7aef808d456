package chart

import (
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PNG renders the stacked bar chart as a PNG image
type PNG struct {
	cfg *model.ChartConfig
}

var _ interfaces.ChartRenderer = (*PNG)(nil)

// NewPNG creates a PNG chart renderer; nil cfg uses the defaults
func NewPNG(cfg *model.ChartConfig) *PNG {
	return &PNG{cfg: cfg.WithDefaults()}
}

// ContentType returns the MIME type of the rendered output
func (p *PNG) ContentType() string {
	return "image/png"
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// Build creates the stacked bar chart for series
func (p *PNG) Build(series *model.ChartSeries) gochart.StackedBarChart {
	approvedColor := hexColor(p.cfg.ApprovedColor)
	rejectedColor := hexColor(p.cfg.RejectedColor)

	bars := make([]gochart.StackedBar, 0, series.Len())
	for i, label := range series.Labels {
		bars = append(bars, gochart.StackedBar{
			Name: label,
			Values: []gochart.Value{
				{
					Label: p.cfg.ApprovedLabel,
					Value: float64(series.Approved[i]),
					Style: gochart.Style{FillColor: approvedColor, StrokeColor: approvedColor},
				},
				{
					Label: p.cfg.RejectedLabel,
					Value: float64(series.Rejected[i]),
					Style: gochart.Style{FillColor: rejectedColor, StrokeColor: rejectedColor},
				},
			},
		})
	}

	return gochart.StackedBarChart{
		Title:  p.cfg.Title,
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		XAxis: gochart.Style{
			FontSize: 10,
		},
		YAxis: gochart.Style{
			FontSize: 10,
		},
		Bars: bars,
	}
}

// Render writes the PNG for series; an empty series yields model.ErrEmptyChart
func (p *PNG) Render(ctx context.Context, w io.Writer, series *model.ChartSeries) error {
	if series == nil {
		return goerr.New("chart series is nil")
	}
	if series.IsEmpty() {
		return goerr.Wrap(model.ErrEmptyChart, "nothing to draw")
	}

	sbc := p.Build(series)
	if err := sbc.Render(gochart.PNG, w); err != nil {
		return goerr.Wrap(err, "failed to render png chart",
			goerr.V("bars", len(sbc.Bars)))
	}
	return nil
}
