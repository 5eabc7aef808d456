package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/secmon-lab/visastat/pkg/utils/apperr"
)

type locationsResponse struct {
	Locations []types.Location `json:"locations"`
	Default   types.Location   `json:"default"`
}

type chartResponse struct {
	Location types.Location     `json:"location"`
	Start    string             `json:"start"`
	End      string             `json:"end"`
	Series   *model.ChartSeries `json:"series"`
}

type statusResponse struct {
	Result  *model.StatusResult `json:"result,omitempty"`
	Message string              `json:"message"`
	Class   string              `json:"class"`
}

// handleLocations lists the dataset locations
func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locations, err := h.dashboard.Locations(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := locationsResponse{Locations: locations}
	if def, err := h.dashboard.DefaultLocation(locations); err == nil {
		resp.Default = def
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleChartData returns the chart series of the resolved view
func (h *handler) handleChartData(w http.ResponseWriter, r *http.Request) {
	view, err := h.resolveView(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, chartResponse{
		Location: view.Location,
		Start:    model.FormatDate(view.Start),
		End:      model.FormatDate(view.End),
		Series:   view.Series,
	})
}

// handleStatusAPI performs a status lookup and returns the rendered view.
// Validation failures answer 400, transport failures 502.
func (h *handler) handleStatusAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.status.Check(ctx, r.URL.Query().Get("application_id"))
	view := usecase.PresentStatus(result, err)

	code := http.StatusOK
	if err != nil {
		if goerr.HasTag(err, model.ErrTagValidation) {
			code = http.StatusBadRequest
		} else {
			apperr.Handle(ctx, err)
			code = http.StatusBadGateway
		}
	}

	writeJSON(w, r, code, statusResponse{
		Result:  result,
		Message: view.Message,
		Class:   view.Class,
	})
}
