package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/usecase"
)

func TestStatusLookup_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("empty identifier never issues a request", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			client := &mocks.StatusClientMock{}
			uc := usecase.NewStatusLookup(client)

			result, err := uc.Check(ctx, input)
			gt.Nil(t, result)
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
			gt.Equal(t, len(client.CheckStatusCalls()), 0)

			view := usecase.PresentStatus(result, err)
			gt.Equal(t, view.Message, usecase.MsgEmptyApplication)
			gt.Equal(t, view.Class, model.StatusClassError)
		}
	})

	t.Run("identifier is trimmed and result annotated", func(t *testing.T) {
		client := &mocks.StatusClientMock{
			CheckStatusFunc: func(ctx context.Context, id types.ApplicationID) (*model.StatusResult, error) {
				return &model.StatusResult{
					Tag:            types.StatusTagSuccess,
					Decision:       types.DecisionApproved,
					ExtractionDate: "2024-01-15",
				}, nil
			},
		}
		uc := usecase.NewStatusLookup(client)

		result, err := uc.Check(ctx, "  ABC123 ")
		gt.NoError(t, err).Required()
		gt.Equal(t, result.ApplicationID, types.ApplicationID("ABC123"))
		gt.NotEqual(t, result.LookupID, types.LookupID(""))

		calls := client.CheckStatusCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].ID, types.ApplicationID("ABC123"))
	})

	t.Run("transport failure is returned as error", func(t *testing.T) {
		client := &mocks.StatusClientMock{
			CheckStatusFunc: func(ctx context.Context, id types.ApplicationID) (*model.StatusResult, error) {
				return nil, goerr.New("dial tcp: connection refused")
			},
		}
		uc := usecase.NewStatusLookup(client)

		result, err := uc.Check(ctx, "ABC123")
		gt.Error(t, err)

		view := usecase.PresentStatus(result, err)
		gt.Equal(t, view.Message, model.StatusFailureMessage)
		gt.Equal(t, view.Class, model.StatusClassError)
	})

	t.Run("unconfigured client", func(t *testing.T) {
		uc := usecase.NewStatusLookup(nil)
		gt.False(t, uc.IsConfigured())
		_, err := uc.Check(ctx, "ABC123")
		gt.Error(t, err)
		gt.False(t, goerr.HasTag(err, model.ErrTagValidation))
	})
}

func TestPresentStatus(t *testing.T) {
	type testCase struct {
		result *model.StatusResult
		msg    string
		class  string
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			view := usecase.PresentStatus(tc.result, nil)
			gt.Equal(t, view.Message, tc.msg)
			gt.Equal(t, view.Class, tc.class)
		}
	}

	t.Run("approved", runTest(testCase{
		result: &model.StatusResult{
			ApplicationID:  "ABC123",
			Tag:            types.StatusTagSuccess,
			Decision:       types.DecisionApproved,
			ExtractionDate: "2024-01-15",
		},
		msg:   "Application ABC123 has been approved. Last updated: 15 Jan 2024",
		class: model.StatusClassSuccess,
	}))

	t.Run("refused with timestamp", runTest(testCase{
		result: &model.StatusResult{
			ApplicationID:  "XYZ",
			Tag:            types.StatusTagSuccess,
			Decision:       types.DecisionRefused,
			ExtractionDate: "2024-02-03T10:00:00Z",
		},
		msg:   "Application XYZ has been refused. Last updated: 3 Feb 2024",
		class: model.StatusClassSuccess,
	}))

	t.Run("unrecognized decision renders only the date", runTest(testCase{
		result: &model.StatusResult{
			ApplicationID:  "XYZ",
			Tag:            types.StatusTagSuccess,
			Decision:       "pending",
			ExtractionDate: "2024-02-03",
		},
		msg:   "Last updated: 3 Feb 2024",
		class: model.StatusClassSuccess,
	}))

	t.Run("unparseable date is shown raw", runTest(testCase{
		result: &model.StatusResult{
			Tag:            types.StatusTagSuccess,
			Decision:       "other",
			ExtractionDate: "last week",
		},
		msg:   "Last updated: last week",
		class: model.StatusClassSuccess,
	}))

	t.Run("not found renders the message verbatim", runTest(testCase{
		result: &model.StatusResult{
			Tag:     types.StatusTagNotFound,
			Message: "No record",
		},
		msg:   "No record",
		class: model.StatusClassError,
	}))

	t.Run("error tag renders its message", runTest(testCase{
		result: &model.StatusResult{
			Tag:     types.StatusTagError,
			Message: "Service unavailable",
		},
		msg:   "Service unavailable",
		class: model.StatusClassError,
	}))

	t.Run("error tag without message", runTest(testCase{
		result: &model.StatusResult{Tag: types.StatusTagError},
		msg:    model.StatusFailureMessage,
		class:  model.StatusClassError,
	}))

	t.Run("nil result", runTest(testCase{
		msg:   model.StatusFailureMessage,
		class: model.StatusClassError,
	}))
}

func TestLoadingStatus(t *testing.T) {
	view := usecase.LoadingStatus()
	gt.Equal(t, view.Class, model.StatusClassLoading)
	gt.S(t, view.Message).Contains("Checking")
}
