package api

import (
	"net/http"

	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/ranking"
)

// parameterView is one adjustable input with its default value.
type parameterView struct {
	factors.Param
	Default float64 `json:"default"`
}

func (h *Handler) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	state := ranking.DefaultSortState()
	q := r.URL.Query()

	if v := q.Get("sort"); v != "" {
		field, err := ranking.ParseField(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		state = ranking.SortState{SortBy: field, Order: ranking.Descending}
	}
	if v := q.Get("order"); v != "" {
		order, err := ranking.ParseOrder(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		state.Order = order
	}

	writeJSON(w, http.StatusOK, ranking.Rank(state))
}

func (h *Handler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"features": ranking.FeatureImportances(),
		"dataset":  ranking.Dataset(),
	})
}

func (h *Handler) handleParameters(w http.ResponseWriter, r *http.Request) {
	defaults := factors.Defaults()
	params := factors.Params()

	views := make([]parameterView, 0, len(params))
	for _, p := range params {
		views = append(views, parameterView{Param: p, Default: p.Get(defaults)})
	}
	writeJSON(w, http.StatusOK, views)
}
