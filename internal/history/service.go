// Package history persists computed assessments in Postgres so they can be
// listed and fetched after the in-memory cache has evicted them.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/riskscope/riskscope/pkg/scoring"
)

// ErrNotFound is returned when no assessment has the requested ID.
var ErrNotFound = errors.New("assessment not found")

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Service provides assessment history backed by Postgres.
type Service struct {
	db *sql.DB
}

// Record is one stored assessment.
type Record struct {
	ID         string          `json:"id"`
	Seed       uint64          `json:"seed"`
	MainRisk   int             `json:"main_risk"`
	RiskLevel  string          `json:"risk_level"`
	BaseRisk   float64         `json:"base_risk"`
	Factors    json.RawMessage `json:"factors"`
	Assessment json.RawMessage `json:"assessment"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewRecord flattens an assessment into a storable record.
func NewRecord(id string, seed uint64, a *scoring.Assessment) (Record, error) {
	factorsJSON, err := json.Marshal(a.Factors)
	if err != nil {
		return Record{}, fmt.Errorf("marshal factors: %w", err)
	}
	assessmentJSON, err := json.Marshal(a)
	if err != nil {
		return Record{}, fmt.Errorf("marshal assessment: %w", err)
	}
	return Record{
		ID:         id,
		Seed:       seed,
		MainRisk:   a.MainRisk,
		RiskLevel:  string(a.RiskLevel),
		BaseRisk:   a.BaseRisk,
		Factors:    factorsJSON,
		Assessment: assessmentJSON,
	}, nil
}

// Decode unmarshals the stored assessment.
func (r Record) Decode() (*scoring.Assessment, error) {
	var a scoring.Assessment
	if err := json.Unmarshal(r.Assessment, &a); err != nil {
		return nil, fmt.Errorf("decode assessment %s: %w", r.ID, err)
	}
	return &a, nil
}

// NewService creates a new history Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Ping reports whether the database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save inserts a record and returns it with its creation time set.
// Seeds are stored as text since Postgres has no unsigned 64-bit type.
func (s *Service) Save(ctx context.Context, r Record) (*Record, error) {
	out := r
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessments (id, seed, main_risk, risk_level, base_risk, factors, assessment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		r.ID, strconv.FormatUint(r.Seed, 10), r.MainRisk, r.RiskLevel, r.BaseRisk,
		string(r.Factors), string(r.Assessment),
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save assessment %s: %w", r.ID, err)
	}
	return &out, nil
}

// Get retrieves one record by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, seed, main_risk, risk_level, base_risk, factors, assessment, created_at
		 FROM assessments WHERE id = $1`,
		id,
	)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	return r, nil
}

// List returns the most recent records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, seed, main_risk, risk_level, base_risk, factors, assessment, created_at
		 FROM assessments ORDER BY created_at DESC, id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var r Record
	var seed string
	var factorsJSON, assessJSON []byte
	if err := sc.Scan(&r.ID, &seed, &r.MainRisk, &r.RiskLevel, &r.BaseRisk, &factorsJSON, &assessJSON, &r.CreatedAt); err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", seed, err)
	}
	r.Seed = n
	r.Factors = factorsJSON
	r.Assessment = assessJSON
	return &r, nil
}
