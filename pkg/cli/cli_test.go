package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/visastat/pkg/cli"
)

const testDataset = "../repository/testdata/data.json"

func TestChartCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("html output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "chart.html")
		gt.NoError(t, cli.Run(ctx, []string{
			"visastat", "--log-format", "json", "chart",
			"--dataset", testDataset,
			"--location", "Ireland",
			"--start", "2024-01-01",
			"--end", "2024-01-15",
			"--output", out,
		})).Required()

		data, err := os.ReadFile(out)
		gt.NoError(t, err).Required()
		gt.S(t, string(data)).Contains("Visa Processing Statistics")
		gt.S(t, string(data)).Contains("15 - Jan")
	})

	t.Run("png output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "chart.png")
		gt.NoError(t, cli.Run(ctx, []string{
			"visastat", "chart",
			"--dataset", testDataset,
			"--format", "png",
			"--output", out,
		})).Required()

		data, err := os.ReadFile(out)
		gt.NoError(t, err).Required()
		gt.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{
			"visastat", "chart", "--dataset", testDataset, "--format", "svg",
		}))
	})

	t.Run("unknown location", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{
			"visastat", "chart", "--dataset", testDataset, "--location", "Atlantis",
			"--output", filepath.Join(t.TempDir(), "chart.html"),
		}))
	})

	t.Run("end without start is rejected", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "chart.html")
		err := cli.Run(ctx, []string{
			"visastat", "chart", "--dataset", testDataset,
			"--end", "2024-01-15",
			"--output", out,
		})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("--end requires --start")

		_, statErr := os.Stat(out)
		gt.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing dataset", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{
			"visastat", "chart", "--dataset", filepath.Join(t.TempDir(), "none.json"),
		}))
	})
}

func TestStatusCommand(t *testing.T) {
	ctx := context.Background()

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"decision":"approved","extraction_date":"2024-01-15"}}`))
	}))
	defer srv.Close()

	t.Run("lookup succeeds", func(t *testing.T) {
		gt.NoError(t, cli.Run(ctx, []string{
			"visastat", "status", "--status-endpoint", srv.URL, "ABC123",
		}))
		gt.Equal(t, requests.Load(), int32(1))
	})

	t.Run("empty identifier fails without a request", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{
			"visastat", "status", "--status-endpoint", srv.URL, "  ",
		}))
		gt.Equal(t, requests.Load(), int32(1))
	})

	t.Run("endpoint required", func(t *testing.T) {
		gt.Error(t, cli.Run(ctx, []string{"visastat", "status", "ABC123"}))
	})
}

func TestImportCommand(t *testing.T) {
	t.Run("firestore project required", func(t *testing.T) {
		gt.Error(t, cli.Run(context.Background(), []string{
			"visastat", "import", "--dataset", testDataset,
		}))
	})
}
