package status_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/service/status"
)

func newStatusServer(t *testing.T, code int, body string, gotQuery *string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query().Get("application_id")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_CheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success response", func(t *testing.T) {
		var query string
		ts := newStatusServer(t, http.StatusOK,
			`{"status":"success","data":{"decision":"approved","extraction_date":"2024-01-08"}}`, &query)

		client, err := status.New(ts.URL+"/check", status.WithHTTPClient(ts.Client()))
		gt.NoError(t, err).Required()

		result, err := client.CheckStatus(ctx, "IRL 123/45")
		gt.NoError(t, err).Required()
		gt.Equal(t, query, "IRL 123/45")
		gt.Equal(t, result.Tag, types.StatusTagSuccess)
		gt.Equal(t, result.Decision, types.DecisionApproved)
		gt.Equal(t, result.ExtractionDate, "2024-01-08")
		gt.Equal(t, result.ApplicationID, types.ApplicationID("IRL 123/45"))
	})

	t.Run("not_found response with non-200 status", func(t *testing.T) {
		ts := newStatusServer(t, http.StatusNotFound, `{"status":"not_found","message":"No record"}`, nil)

		client, err := status.New(ts.URL)
		gt.NoError(t, err).Required()

		result, err := client.CheckStatus(ctx, "X1")
		gt.NoError(t, err).Required()
		gt.Equal(t, result.Tag, types.StatusTagNotFound)
		gt.Equal(t, result.Message, "No record")
	})

	t.Run("error field is surfaced", func(t *testing.T) {
		ts := newStatusServer(t, http.StatusInternalServerError, `{"error":"upstream unavailable"}`, nil)

		client, err := status.New(ts.URL)
		gt.NoError(t, err).Required()

		result, err := client.CheckStatus(ctx, "X1")
		gt.NoError(t, err).Required()
		gt.Equal(t, result.Tag, types.StatusTagError)
		gt.Equal(t, result.Message, "upstream unavailable")
	})

	t.Run("non-JSON body is a transport failure", func(t *testing.T) {
		ts := newStatusServer(t, http.StatusBadGateway, `<html>Bad Gateway</html>`, nil)

		client, err := status.New(ts.URL)
		gt.NoError(t, err).Required()

		result, err := client.CheckStatus(ctx, "X1")
		gt.Error(t, err)
		gt.Nil(t, result)
		gt.B(t, goerr.HasTag(err, status.ErrTagInvalidJSON)).True()
	})

	t.Run("unreachable endpoint is a transport failure", func(t *testing.T) {
		ts := newStatusServer(t, http.StatusOK, `{}`, nil)
		endpoint := ts.URL
		ts.Close()

		client, err := status.New(endpoint)
		gt.NoError(t, err).Required()

		_, err = client.CheckStatus(ctx, "X1")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, status.ErrTagTransport)).True()
	})

	t.Run("existing query parameters are kept", func(t *testing.T) {
		var rawQuery string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"status":"not_found","message":"none"}`))
		}))
		defer ts.Close()

		client, err := status.New(ts.URL + "/check?key=abc")
		gt.NoError(t, err).Required()

		_, err = client.CheckStatus(ctx, "A&B")
		gt.NoError(t, err)
		gt.Equal(t, rawQuery, "application_id=A%26B&key=abc")
	})
}

func TestNew(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		_, err := status.New("")
		gt.Error(t, err)
	})

	t.Run("non-http endpoint", func(t *testing.T) {
		_, err := status.New("ftp://example.com/status")
		gt.Error(t, err)
	})
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		tag      types.StatusTag
		decision types.Decision
		message  string
	}{
		{
			name:     "refused decision",
			body:     `{"status":"success","data":{"decision":"refused","extraction_date":"2024-02-01"}}`,
			tag:      types.StatusTagSuccess,
			decision: types.DecisionRefused,
		},
		{
			name:     "unrecognized decision is kept as-is",
			body:     `{"status":"success","data":{"decision":"pending"}}`,
			tag:      types.StatusTagSuccess,
			decision: types.Decision("pending"),
		},
		{
			name:    "unknown status without error field",
			body:    `{"status":"weird"}`,
			tag:     types.StatusTagError,
			message: model.StatusFailureMessage,
		},
		{
			name:    "top-level array",
			body:    `[1,2,3]`,
			tag:     types.StatusTagError,
			message: model.StatusFailureMessage,
		},
		{
			name:    "explicit error status with error field",
			body:    `{"status":"error","error":"Invalid application ID"}`,
			tag:     types.StatusTagError,
			message: "Invalid application ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := status.ParseResponse("A1", []byte(tt.body))
			gt.NoError(t, err).Required()
			gt.Equal(t, result.Tag, tt.tag)
			gt.Equal(t, result.Decision, tt.decision)
			gt.Equal(t, result.Message, tt.message)
		})
	}
}
