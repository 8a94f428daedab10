package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage implements StorageClient using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage creates a GCS-backed StorageClient.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) put(ctx context.Context, kind, id string, data []byte) error {
	key := objectKey(kind, id)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType(kind)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSStorage) get(ctx context.Context, kind, id string) ([]byte, error) {
	key := objectKey(kind, id)
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, fmt.Errorf("gcs read %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (s *GCSStorage) PutAssessment(ctx context.Context, id string, data []byte) error {
	return s.put(ctx, kindAssessments, id, data)
}

func (s *GCSStorage) GetAssessment(ctx context.Context, id string) ([]byte, error) {
	return s.get(ctx, kindAssessments, id)
}

func (s *GCSStorage) PutReport(ctx context.Context, id string, data []byte) error {
	return s.put(ctx, kindReports, id, data)
}

func (s *GCSStorage) GetReport(ctx context.Context, id string) ([]byte, error) {
	return s.get(ctx, kindReports, id)
}
