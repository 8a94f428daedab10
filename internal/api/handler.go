// Package api implements the Riskscope REST API.
// It scores risk factors on request and serves the reference algorithm
// catalogue, backed by optional Postgres history and blob storage.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/riskscope/riskscope/internal/history"
	"github.com/riskscope/riskscope/internal/store"
	"github.com/riskscope/riskscope/pkg/noise"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// HistoryStore persists assessments. *history.Service implements it.
type HistoryStore interface {
	Save(ctx context.Context, r history.Record) (*history.Record, error)
	Get(ctx context.Context, id string) (*history.Record, error)
	List(ctx context.Context, limit int) ([]history.Record, error)
	Ping(ctx context.Context) error
}

// Handler is the top-level API handler for the Riskscope service.
type Handler struct {
	engine  *scoring.Engine
	history HistoryStore        // nil when no database is configured
	storage store.StorageClient // nil when no blob storage is configured
	cache   *AssessmentCache
	logger  *zap.Logger

	// newSeed picks the noise seed for requests that do not carry one.
	newSeed func() uint64
}

// NewHandler creates a new API handler. hist and storage may be nil.
func NewHandler(engine *scoring.Engine, hist HistoryStore, storage store.StorageClient, cache *AssessmentCache, logger *zap.Logger) *Handler {
	if engine == nil {
		engine = scoring.NewEngine(scoring.DefaultFactors()...)
	}
	if cache == nil {
		cache = NewAssessmentCacheFromEnv()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:  engine,
		history: hist,
		storage: storage,
		cache:   cache,
		logger:  logger,
		newSeed: noise.NewSeed,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
// auth wraps the write endpoints; pass APIKeyAuth("") to leave them open.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	// Write endpoints (auth-protected)
	mux.Handle("POST /api/v1/assessments", auth(http.HandlerFunc(h.handleCreateAssessment)))

	// Read endpoints
	mux.HandleFunc("GET /api/v1/assessments", h.handleListAssessments)
	mux.HandleFunc("GET /api/v1/assessments/{id}", h.handleGetAssessment)
	mux.HandleFunc("GET /api/v1/assessments/{id}/report", h.handleGetReport)
	mux.HandleFunc("GET /api/v1/algorithms", h.handleAlgorithms)
	mux.HandleFunc("GET /api/v1/features", h.handleFeatures)
	mux.HandleFunc("GET /api/v1/parameters", h.handleParameters)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.history != nil {
		if err := h.history.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
