package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/visastat/pkg/domain/model"
)

// ChartRenderer renders a chart series into some output format
type ChartRenderer interface {
	ContentType() string
	Render(ctx context.Context, w io.Writer, series *model.ChartSeries) error
}
