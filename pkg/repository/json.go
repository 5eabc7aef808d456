package repository

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
)

// JSONSource loads a dataset document from a local file or an http(s) URL.
// The document is shaped as {location: {date: {approved, rejected}}}.
type JSONSource struct {
	location   string
	httpClient *http.Client
}

// JSONSourceOption configures JSONSource
type JSONSourceOption func(*JSONSource)

// WithHTTPClient sets the HTTP client used for URL locations
func WithHTTPClient(client *http.Client) JSONSourceOption {
	return func(s *JSONSource) {
		s.httpClient = client
	}
}

// NewJSONSource creates a new JSON dataset source
func NewJSONSource(location string, opts ...JSONSourceOption) interfaces.DatasetSource {
	s := &JSONSource{
		location:   location,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JSONSource) isRemote() bool {
	return strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://")
}

// Load reads, decodes and validates the dataset
func (s *JSONSource) Load(ctx context.Context) (model.Dataset, error) {
	if s.location == "" {
		return nil, goerr.New("dataset location is empty")
	}

	var (
		raw []byte
		err error
	)
	if s.isRemote() {
		raw, err = s.fetch(ctx)
	} else {
		raw, err = os.ReadFile(s.location)
		if err != nil {
			err = goerr.Wrap(err, "failed to read dataset file", goerr.V("path", s.location))
		}
	}
	if err != nil {
		return nil, err
	}

	dataset, err := DecodeDataset(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode dataset", goerr.V("location", s.location))
	}

	ctxlog.From(ctx).Debug("Dataset loaded",
		"location", s.location,
		"locations", len(dataset),
	)
	return dataset, nil
}

func (s *JSONSource) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dataset request", goerr.V("url", s.location))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch dataset", goerr.V("url", s.location))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("failed to load data",
			goerr.V("url", s.location),
			goerr.V("status", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset body", goerr.V("url", s.location))
	}
	return raw, nil
}

// Close does nothing; JSONSource holds no connection
func (s *JSONSource) Close() error {
	return nil
}

// DecodeDataset parses and validates a dataset document
func DecodeDataset(raw []byte) (model.Dataset, error) {
	var dataset model.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset JSON")
	}
	if dataset == nil {
		return nil, goerr.New("dataset document is empty")
	}
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	return dataset, nil
}
