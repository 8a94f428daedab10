package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riskscope/riskscope/internal/history"
	"github.com/riskscope/riskscope/internal/store"
	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/noise"
	"github.com/riskscope/riskscope/pkg/scoring"
	"github.com/riskscope/riskscope/pkg/surface"
)

// maxBodyBytes bounds the POST body; a factor record is a few hundred bytes.
const maxBodyBytes = 64 << 10

// StoredAssessment is an assessment together with the identity it was
// stored under. Its JSON form flattens the assessment fields.
type StoredAssessment struct {
	ID        string    `json:"id"`
	Seed      uint64    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	*scoring.Assessment
}

// assessmentRequest is the JSON body for POST /api/v1/assessments.
// Omitted factor fields take their defaults.
type assessmentRequest struct {
	Factors factors.RiskFactors `json:"factors"`
	Seed    *uint64             `json:"seed"`
}

func (h *Handler) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	req := assessmentRequest{Factors: factors.Defaults()}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	seed := h.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	result, err := h.engine.Compute(req.Factors, noise.NewSeeded(seed))
	if err != nil {
		if errors.Is(err, factors.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("compute assessment", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute assessment")
		return
	}

	// Version 7 IDs sort by creation time and date-partition blob keys.
	id, err := uuid.NewV7()
	if err != nil {
		h.logger.Error("generate assessment id", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store assessment")
		return
	}

	stored := &StoredAssessment{
		ID:         id.String(),
		Seed:       seed,
		CreatedAt:  time.Now().UTC(),
		Assessment: result,
	}

	if h.history != nil {
		rec, err := history.NewRecord(stored.ID, seed, result)
		if err != nil {
			h.logger.Error("build history record", zap.String("id", stored.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to store assessment")
			return
		}
		saved, err := h.history.Save(r.Context(), rec)
		if err != nil {
			h.logger.Error("save assessment", zap.String("id", stored.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to store assessment")
			return
		}
		stored.CreatedAt = saved.CreatedAt
	}

	// Blob storage is best effort; the assessment is already computed
	// and, when history is configured, persisted.
	if h.storage != nil {
		if err := h.putBlobs(r.Context(), stored); err != nil {
			h.logger.Warn("store assessment blobs", zap.String("id", stored.ID), zap.Error(err))
		}
	}

	h.cache.Put(stored)
	h.logger.Info("assessment computed",
		zap.String("id", stored.ID),
		zap.Int("main_risk", result.MainRisk),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	writeJSON(w, http.StatusCreated, stored)
}

// putBlobs writes the JSON record and the Markdown report.
func (h *Handler) putBlobs(ctx context.Context, a *StoredAssessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	if err := h.storage.PutAssessment(ctx, a.ID, data); err != nil {
		return err
	}

	var report bytes.Buffer
	if err := (&surface.MarkdownRenderer{}).Render(&report, a.Assessment); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return h.storage.PutReport(ctx, a.ID, report.Bytes())
}

// loadAssessment looks an assessment up in the cache, then in history,
// then in blob storage. It returns nil when none has it.
func (h *Handler) loadAssessment(ctx context.Context, id string) (*StoredAssessment, error) {
	if a := h.cache.Get(id); a != nil {
		return a, nil
	}

	if h.history != nil {
		rec, err := h.history.Get(ctx, id)
		switch {
		case err == nil:
			result, err := rec.Decode()
			if err != nil {
				return nil, err
			}
			a := &StoredAssessment{ID: rec.ID, Seed: rec.Seed, CreatedAt: rec.CreatedAt, Assessment: result}
			h.cache.Put(a)
			return a, nil
		case !errors.Is(err, history.ErrNotFound):
			return nil, err
		}
	}

	if h.storage != nil {
		data, err := h.storage.GetAssessment(ctx, id)
		switch {
		case err == nil:
			var a StoredAssessment
			if err := json.Unmarshal(data, &a); err != nil {
				return nil, fmt.Errorf("unmarshal assessment %s: %w", id, err)
			}
			h.cache.Put(&a)
			return &a, nil
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}

	return nil, nil
}

func (h *Handler) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	a, err := h.loadAssessment(r.Context(), id)
	if err != nil {
		h.logger.Error("load assessment", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeJSON(w, http.StatusOK, []history.Record{})
		return
	}

	limit := history.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.history.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("list assessments", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if h.storage == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	data, err := h.storage.GetReport(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		h.logger.Error("load report", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
