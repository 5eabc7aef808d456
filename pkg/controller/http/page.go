package http

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/secmon-lab/visastat/pkg/utils/apperr"
)

const pageTemplate = "dashboard.html"

// pageData is the data of the dashboard page template
type pageData struct {
	Title         string
	Ready         bool
	Alert         string
	Locations     []types.Location
	Location      types.Location
	Start         string
	Today         string
	Error         string
	ChartURL      string
	StatusEnabled bool
	ApplicationID string
	Status        model.StatusView
	Loading       model.StatusView

	code int
}

// chartURL returns the URL of the standalone chart for view
func chartURL(view *usecase.DashboardView) string {
	q := url.Values{}
	q.Set("location", view.Location.String())
	q.Set("start", model.FormatDate(view.Start))
	q.Set("end", model.FormatDate(view.End))
	return "/chart?" + q.Encode()
}

// newPage builds the page for a location and start date. Without a start
// date the most recent entries are shown. Rejected input keeps the selected
// location when it is known, otherwise falls back to the default chart, and
// reports the reason.
func (h *handler) newPage(ctx context.Context, location types.Location, start string, hasStart bool) *pageData {
	data := &pageData{
		Title:         h.title,
		Today:         model.FormatDate(h.dashboard.Today()),
		StatusEnabled: h.statusEnabled(),
		Loading:       usecase.LoadingStatus(),
		code:          http.StatusOK,
	}

	switch state, _ := h.dashboard.State(); state {
	case usecase.LoadStatePending:
		data.Alert = usecase.MsgDatasetLoading
		data.code = http.StatusServiceUnavailable
		return data
	case usecase.LoadStateFailed:
		data.Alert = usecase.MsgLoadFailed
		data.code = http.StatusServiceUnavailable
		return data
	}

	var (
		view *usecase.DashboardView
		err  error
	)
	if hasStart {
		view, err = h.dashboard.Update(ctx, location, start)
	} else {
		view, err = h.dashboard.DefaultView(ctx, location)
	}
	if err != nil && goerr.HasTag(err, model.ErrTagValidation) {
		data.Error = err.Error()
		data.code = http.StatusBadRequest
		view, err = h.dashboard.DefaultView(ctx, location)
		if err != nil && goerr.HasTag(err, model.ErrTagValidation) {
			view, err = h.dashboard.DefaultView(ctx, "")
		}
	}

	if err != nil {
		apperr.Handle(ctx, err)
		data.Alert = h.userMessage(err)
		data.code = errorStatus(err)
		return data
	}

	data.Ready = true
	data.Locations = view.Locations
	data.Location = view.Location
	data.Start = model.FormatDate(view.Start)
	data.ChartURL = chartURL(view)
	if data.Error != "" && hasStart {
		data.Start = start
	}
	return data
}

func (h *handler) renderPage(w http.ResponseWriter, r *http.Request, data *pageData) {
	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		h.handleError(w, r, goerr.Wrap(err, "failed to render page"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(data.code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "error", err)
	}
}

// handleDashboard renders the dashboard page
func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := h.newPage(r.Context(), types.Location(q.Get("location")), q.Get("start"), q.Has("start"))
	h.renderPage(w, r, data)
}

// handleStatusForm performs a status lookup submitted from the page form
func (h *handler) handleStatusForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeError(w, r, "invalid form", http.StatusBadRequest)
		return
	}

	start := r.PostForm.Get("start")
	data := h.newPage(ctx, types.Location(r.PostForm.Get("location")), start, start != "")
	data.ApplicationID = r.PostForm.Get("application_id")

	result, err := h.status.Check(ctx, data.ApplicationID)
	if err != nil && !goerr.HasTag(err, model.ErrTagValidation) {
		apperr.Handle(ctx, err)
	}
	data.Status = usecase.PresentStatus(result, err)
	h.renderPage(w, r, data)
}
