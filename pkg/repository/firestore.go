package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultCollection is the collection holding one document per location
const DefaultCollection = "visa_stats"

// locationDocument is the stored form of one location series
type locationDocument struct {
	Name   string                      `firestore:"name"`
	Counts map[string]model.DailyCount `firestore:"counts"`
}

// Firestore loads and stores the dataset in a Firestore collection
type Firestore struct {
	client     *firestore.Client
	collection string
}

// NewFirestore creates a new Firestore dataset source
func NewFirestore(ctx context.Context, projectID, databaseID, collection string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	if collection == "" {
		collection = DefaultCollection
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore dataset source initialized",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", collection,
	)

	return &Firestore{
		client:     client,
		collection: collection,
	}, nil
}

// Load reads every location document of the collection
func (f *Firestore) Load(ctx context.Context) (model.Dataset, error) {
	iter := f.client.Collection(f.collection).Documents(ctx)
	defer iter.Stop()

	dataset := make(model.Dataset)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate location documents",
				goerr.V("collection", f.collection))
		}

		var stored locationDocument
		if err := doc.DataTo(&stored); err != nil {
			return nil, goerr.Wrap(err, "failed to decode location document",
				goerr.V("id", doc.Ref.ID))
		}

		name := stored.Name
		if name == "" {
			name = doc.Ref.ID
		}

		series := make(model.LocationSeries, len(stored.Counts))
		for date, count := range stored.Counts {
			series[date] = count
		}
		dataset[types.Location(name)] = series
	}

	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset in firestore",
			goerr.V("collection", f.collection))
	}

	return dataset, nil
}

// Put writes every location of dataset as one document, replacing existing ones
func (f *Firestore) Put(ctx context.Context, dataset model.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return goerr.Wrap(err, "refusing to store invalid dataset")
	}

	bw := f.client.BulkWriter(ctx)
	jobs := make(map[types.Location]*firestore.BulkWriterJob, len(dataset))
	for location, series := range dataset {
		doc := locationDocument{
			Name:   location.String(),
			Counts: series,
		}
		ref := f.client.Collection(f.collection).Doc(location.String())
		job, err := bw.Set(ref, doc)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue location document",
				goerr.V("location", location))
		}
		jobs[location] = job
	}
	bw.End()

	for location, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to write location document",
				goerr.V("location", location))
		}
	}

	ctxlog.From(ctx).Info("Dataset stored in firestore",
		"collection", f.collection,
		"locations", len(dataset),
	)
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
