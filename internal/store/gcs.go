package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/pradnya8113/expenses/internal/domain"
	"github.com/pradnya8113/expenses/internal/logger"
)

// GCSStore keeps the collection as a single JSON object in a GCS
// bucket, with the same read-all/rewrite-all contract as FileStore.
// It assumes Application Default Credentials unless a credentials file
// is supplied.
type GCSStore struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCSStore creates a store over gs://bucket/object. credentialsFile
// may be empty to use Application Default Credentials.
func NewGCSStore(ctx context.Context, bucket, object, credentialsFile string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGCSStore: create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, object: object}, nil
}

// Append reads the current object, appends the record and rewrites the
// object. A missing object or undecodable content reads as an empty
// collection, same as the file backend.
func (s *GCSStore) Append(ctx context.Context, rec domain.ExpenseRecord) error {
	records := s.load(ctx)
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("GCSStore.Append: marshal records: %w", err)
	}

	obj := s.client.Bucket(s.bucket).Object(s.object)
	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("GCSStore.Append: write gs://%s/%s: %w", s.bucket, s.object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("GCSStore.Append: finalize gs://%s/%s: %w", s.bucket, s.object, err)
	}
	return nil
}

// Load returns the current collection in insertion order.
func (s *GCSStore) Load(ctx context.Context) ([]domain.ExpenseRecord, error) {
	return s.load(ctx), nil
}

func (s *GCSStore) load(ctx context.Context) []domain.ExpenseRecord {
	r, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrObjectNotExist) {
			log := logger.FromContext(ctx)
			log.Warn().Err(err).
				Str("bucket", s.bucket).Str("object", s.object).
				Msg("could not open store object, treating as empty")
		}
		return nil
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).
			Str("bucket", s.bucket).Str("object", s.object).
			Msg("could not read store object, treating as empty")
		return nil
	}
	return decodeRecords(data)
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
