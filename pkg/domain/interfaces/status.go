package interfaces

//go:generate moq -out mocks/status_mock.go -pkg mocks . StatusClient

import (
	"context"

	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// StatusClient checks the status of a single application against a remote endpoint
type StatusClient interface {
	// CheckStatus returns a tagged result for a logical answer, or an error on transport failure
	CheckStatus(ctx context.Context, id types.ApplicationID) (*model.StatusResult, error)
}
