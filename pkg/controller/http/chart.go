package http

import (
	"bytes"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/usecase"
)

// resolveView selects the view from query parameters:
// no start shows the recent entries of the location, start alone runs up to today,
// start and end select an explicit range.
func (h *handler) resolveView(r *http.Request) (*usecase.DashboardView, error) {
	ctx := r.Context()
	q := r.URL.Query()
	location := types.Location(q.Get("location"))

	switch {
	case !q.Has("start"):
		return h.dashboard.DefaultView(ctx, location)
	case !q.Has("end"):
		return h.dashboard.Update(ctx, location, q.Get("start"))
	default:
		return h.dashboard.Range(ctx, location, q.Get("start"), q.Get("end"))
	}
}

// handleChart serves the chart of the resolved view in the renderer's format
func (h *handler) handleChart(renderer interfaces.ChartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.resolveView(r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(r.Context(), &buf, view.Series); err != nil {
			h.handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			ctxlog.From(r.Context()).Error("Failed to write chart", "error", err)
		}
	}
}
