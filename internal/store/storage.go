// Package store keeps assessment blobs: the JSON record and the rendered
// Markdown report for every assessment the service computes.
package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no blob exists for an assessment ID.
var ErrNotFound = errors.New("blob not found")

// Blob kinds and their file extensions.
const (
	kindAssessments = "assessments"
	kindReports     = "reports"
)

func ext(kind string) string {
	if kind == kindReports {
		return ".md"
	}
	return ".json"
}

func contentType(kind string) string {
	if kind == kindReports {
		return "text/markdown; charset=utf-8"
	}
	return "application/json"
}

// StorageClient abstracts blob storage for assessments and reports.
type StorageClient interface {
	PutAssessment(ctx context.Context, id string, data []byte) error
	GetAssessment(ctx context.Context, id string) ([]byte, error)
	PutReport(ctx context.Context, id string, data []byte) error
	GetReport(ctx context.Context, id string) ([]byte, error)
}

// objectKey lays blobs out by kind and UTC creation day, e.g.
// "assessments/2026/10/19/<id>.json". The day comes from the timestamp of
// a version 7 UUID, so lookups need only the ID. Other IDs sit directly
// under the kind. Path elements in id are dropped.
func objectKey(kind, id string) string {
	id = path.Base(id)
	return path.Join(kind, dayPrefix(id), id+ext(kind))
}

// dayPrefix returns "yyyy/mm/dd" for a version 7 UUID, else "".
func dayPrefix(id string) string {
	u, err := uuid.Parse(id)
	if err != nil || u.Version() != 7 {
		return ""
	}
	// The first 48 bits are Unix milliseconds, big-endian.
	var ms [8]byte
	copy(ms[2:], u[:6])
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ms[:]))).UTC().Format("2006/01/02")
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(kind, id string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(objectKey(kind, id)))
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStorage) get(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return data, err
}

// PutAssessment stores an assessment record.
func (s *LocalStorage) PutAssessment(ctx context.Context, id string, data []byte) error {
	return s.put(s.path(kindAssessments, id), data)
}

// GetAssessment retrieves an assessment record.
func (s *LocalStorage) GetAssessment(ctx context.Context, id string) ([]byte, error) {
	return s.get(s.path(kindAssessments, id))
}

// PutReport stores a rendered Markdown report.
func (s *LocalStorage) PutReport(ctx context.Context, id string, data []byte) error {
	return s.put(s.path(kindReports, id), data)
}

// GetReport retrieves a rendered Markdown report.
func (s *LocalStorage) GetReport(ctx context.Context, id string) ([]byte, error) {
	return s.get(s.path(kindReports, id))
}
