package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/repository"
)

func newTestDataset() model.Dataset {
	return model.Dataset{
		"Ireland": {
			"2024-01-01": {Approved: 2, Rejected: 1},
			"2024-01-08": {Approved: 3, Rejected: 0},
		},
		"Brazil": {
			"2024-01-08": {Approved: 7, Rejected: 3},
		},
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("Locations are sorted", func(t *testing.T) {
		store := repository.NewMemory(newTestDataset())

		locations, err := store.Locations(ctx)
		gt.NoError(t, err)
		gt.Equal(t, locations, []types.Location{"Brazil", "Ireland"})
	})

	t.Run("GetSeries returns the series", func(t *testing.T) {
		store := repository.NewMemory(newTestDataset())

		series, err := store.GetSeries(ctx, "Ireland")
		gt.NoError(t, err).Required()
		gt.Equal(t, len(series), 2)
		gt.Equal(t, series["2024-01-01"], model.DailyCount{Approved: 2, Rejected: 1})
	})

	t.Run("GetSeries_NotFound", func(t *testing.T) {
		store := repository.NewMemory(newTestDataset())

		_, err := store.GetSeries(ctx, "Atlantis")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLocationNotFound))
	})

	t.Run("GetSeries_EmptyLocation", func(t *testing.T) {
		store := repository.NewMemory(newTestDataset())

		_, err := store.GetSeries(ctx, "")
		gt.Error(t, err)
	})

	t.Run("store is isolated from the source dataset", func(t *testing.T) {
		dataset := newTestDataset()
		store := repository.NewMemory(dataset)

		dataset["Ireland"]["2024-01-01"] = model.DailyCount{Approved: 99}
		delete(dataset, "Brazil")

		series, err := store.GetSeries(ctx, "Ireland")
		gt.NoError(t, err)
		gt.Equal(t, series["2024-01-01"].Approved, 2)

		locations, err := store.Locations(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(locations), 2)
	})

	t.Run("returned series cannot modify the store", func(t *testing.T) {
		store := repository.NewMemory(newTestDataset())

		series, err := store.GetSeries(ctx, "Ireland")
		gt.NoError(t, err)
		series["2024-01-01"] = model.DailyCount{Approved: 99}

		again, err := store.GetSeries(ctx, "Ireland")
		gt.NoError(t, err)
		gt.Equal(t, again["2024-01-01"].Approved, 2)
	})
}

func TestJSONSource(t *testing.T) {
	ctx := context.Background()

	t.Run("load from file", func(t *testing.T) {
		src := repository.NewJSONSource("testdata/data.json")
		defer src.Close()

		dataset, err := src.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(dataset), 2)
		gt.Equal(t, dataset["Ireland"]["2024-01-15"], model.DailyCount{Approved: 5, Rejected: 2})
	})

	t.Run("missing file", func(t *testing.T) {
		src := repository.NewJSONSource(filepath.Join(t.TempDir(), "missing.json"))

		_, err := src.Load(ctx)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to read dataset file")
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"Ireland": [1, 2]}`), 0o600)).Required()

		_, err := repository.NewJSONSource(path).Load(ctx)
		gt.Error(t, err)
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "negative.json")
		gt.NoError(t, os.WriteFile(path, []byte(`{"Ireland": {"2024-01-01": {"approved": -1, "rejected": 0}}}`), 0o600)).Required()

		_, err := repository.NewJSONSource(path).Load(ctx)
		gt.Error(t, err)
	})

	t.Run("load from URL", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/data.json")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Ireland": {"2024-01-01": {"approved": 2, "rejected": 1}}}`))
		}))
		defer ts.Close()

		src := repository.NewJSONSource(ts.URL+"/data.json", repository.WithHTTPClient(ts.Client()))
		dataset, err := src.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, dataset["Ireland"]["2024-01-01"].Approved, 2)
	})

	t.Run("URL returning non-200 fails", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := repository.NewJSONSource(ts.URL + "/data.json").Load(ctx)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to load data")
	})
}

func TestDecodeDataset(t *testing.T) {
	t.Run("null document", func(t *testing.T) {
		_, err := repository.DecodeDataset([]byte(`null`))
		gt.Error(t, err)
	})

	t.Run("empty object is a valid empty dataset", func(t *testing.T) {
		dataset, err := repository.DecodeDataset([]byte(`{}`))
		gt.NoError(t, err)
		gt.Equal(t, len(dataset), 0)
	})
}

func TestFirestore(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx = ctxlog.With(ctx, logger)

	// Use a unique collection to avoid conflicts between runs
	collection := fmt.Sprintf("visa_stats_test_%d", time.Now().UnixNano())
	src, err := repository.NewFirestore(ctx, projectID, databaseID, collection)
	gt.NoError(t, err).Required()
	defer src.Close()

	dataset := newTestDataset()
	gt.NoError(t, src.Put(ctx, dataset)).Required()

	loaded, err := src.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(loaded), len(dataset))
	gt.Equal(t, loaded["Ireland"]["2024-01-08"], model.DailyCount{Approved: 3, Rejected: 0})
	gt.Equal(t, loaded["Brazil"]["2024-01-08"], model.DailyCount{Approved: 7, Rejected: 3})
}
