package model

import "github.com/secmon-lab/visastat/pkg/domain/types"

// StatusResult is the discriminated result of one status lookup
type StatusResult struct {
	LookupID       types.LookupID      `json:"lookup_id"`
	ApplicationID  types.ApplicationID `json:"application_id"`
	Tag            types.StatusTag     `json:"status"`
	Decision       types.Decision      `json:"decision,omitempty"`
	ExtractionDate string              `json:"extraction_date,omitempty"`
	Message        string              `json:"message,omitempty"`
}

// Style classes of the status result region
const (
	StatusClassSuccess = "success"
	StatusClassError   = "error"
	StatusClassLoading = "loading"
)

// StatusView is a rendered status message with its style class
type StatusView struct {
	Message string `json:"message"`
	Class   string `json:"class"`
}

// StatusFailureMessage is shown when a lookup fails without a usable message
const StatusFailureMessage = "Failed to check status. Please try again later."
