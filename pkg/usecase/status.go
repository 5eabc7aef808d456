package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// StatusLookup checks single applications against the status client
type StatusLookup struct {
	client interfaces.StatusClient
}

// NewStatusLookup creates a new StatusLookup; a nil client disables lookups
func NewStatusLookup(client interfaces.StatusClient) *StatusLookup {
	return &StatusLookup{
		client: client,
	}
}

// IsConfigured returns true if a status client is available
func (uc *StatusLookup) IsConfigured() bool {
	return uc.client != nil
}

// Check validates the identifier and performs one lookup. An empty
// identifier is rejected before any request is made.
func (uc *StatusLookup) Check(ctx context.Context, input string) (*model.StatusResult, error) {
	id := types.ApplicationID(input).Normalize()
	if err := id.Validate(); err != nil {
		return nil, goerr.New(MsgEmptyApplication, goerr.T(model.ErrTagValidation))
	}

	if uc.client == nil {
		return nil, goerr.New("status lookup is not configured")
	}

	lookupID := types.NewLookupID()
	logger := ctxlog.From(ctx).With("lookup_id", lookupID, "application_id", id)
	ctx = ctxlog.With(ctx, logger)

	logger.Debug("Checking application status")
	result, err := uc.client.CheckStatus(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check status",
			goerr.V("lookup_id", lookupID),
			goerr.V("application_id", id))
	}

	result.LookupID = lookupID
	result.ApplicationID = id

	logger.Info("Application status checked",
		"status", result.Tag,
		"decision", result.Decision,
	)
	return result, nil
}

// LoadingStatus is the view shown while a lookup is outstanding
func LoadingStatus() model.StatusView {
	return model.StatusView{
		Message: "Checking status...",
		Class:   model.StatusClassLoading,
	}
}

// PresentStatus renders the outcome of Check. It is the single place where
// results, validation failures and transport failures become user messages.
func PresentStatus(result *model.StatusResult, err error) model.StatusView {
	if err != nil {
		if goerr.HasTag(err, model.ErrTagValidation) {
			return model.StatusView{Message: err.Error(), Class: model.StatusClassError}
		}
		return model.StatusView{Message: model.StatusFailureMessage, Class: model.StatusClassError}
	}
	if result == nil {
		return model.StatusView{Message: model.StatusFailureMessage, Class: model.StatusClassError}
	}

	switch result.Tag {
	case types.StatusTagSuccess:
		date := formatExtractionDate(result.ExtractionDate)
		if !result.Decision.IsKnown() {
			return model.StatusView{Message: fmt.Sprintf("Last updated: %s", date), Class: model.StatusClassSuccess}
		}
		msg := fmt.Sprintf("Application %s has been %s. Last updated: %s", result.ApplicationID, result.Decision, date)
		return model.StatusView{Message: msg, Class: model.StatusClassSuccess}

	case types.StatusTagNotFound:
		return model.StatusView{Message: result.Message, Class: model.StatusClassError}

	default:
		msg := result.Message
		if msg == "" {
			msg = model.StatusFailureMessage
		}
		return model.StatusView{Message: msg, Class: model.StatusClassError}
	}
}

// formatExtractionDate renders the endpoint's date string as a long date,
// falling back to the raw value when it is neither a date nor a timestamp.
func formatExtractionDate(s string) string {
	if d, err := model.ParseDate(s); err == nil {
		return model.FormatLongDate(d)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return model.FormatLongDate(t)
	}
	if s == "" {
		return "unknown"
	}
	return s
}
