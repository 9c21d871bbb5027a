package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/ads-assistant-api/pkg/log"
)

type relevanceRequest struct {
	Query   string                 `json:"query"`
	Filters *domain.InsightFilters `json:"filters,omitempty"`
}

func SelectRelevantContext(builder contextbuilding.ContextBuilder, selector *relevance.Selector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req relevanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("relevance: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Query) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "query é obrigatória", nil)
			return
		}

		bundle, err := builder.PrepareAIContext(id, req.Filters, "")
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("relevance: failed to build context for selection")

			writeUsecaseError(w, err)
			return
		}

		relevant := selector.SelectRelevantContext(req.Query, bundle)

		logger.WithFields(log.Fields{
			"account_id":     id,
			"focus":          relevant.Focus,
			"ranking_metric": relevant.RankingMetric,
		}).Info("relevance: relevant context selected")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(relevant); err != nil {
			logger.WithError(err).Error("relevance: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
