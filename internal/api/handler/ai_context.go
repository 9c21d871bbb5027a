package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/ads-assistant-api/pkg/log"
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

func GetAIContext(service contextbuilding.ContextBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("context: building AI context for account")

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("context: invalid filter parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		query := r.URL.Query().Get("query")

		bundle, err := service.PrepareAIContext(id, filters, query)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("context: failed to build AI context")

			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bundle); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("context: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

var errEmptyCustomRange = errors.New("período customizado exige start_date e end_date")

// parseFilters monta os filtros de busca a partir da query string
func parseFilters(r *http.Request) (*domain.InsightFilters, error) {
	filters := &domain.InsightFilters{}

	if dateRange := r.URL.Query().Get("date_range"); dateRange != "" {
		filters.DateRange = domain.DateRange(dateRange)
	}

	if startParam := r.URL.Query().Get("start_date"); startParam != "" {
		startDate, err := utils.ParseDate(startParam)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
		filters.DateRange = domain.DateRangeCustom
	}

	if endParam := r.URL.Query().Get("end_date"); endParam != "" {
		endDate, err := utils.ParseDate(endParam)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
		filters.DateRange = domain.DateRangeCustom
	}

	// Período customizado exige as duas datas; com só uma, a chave de cache e
	// a consulta à plataforma ficariam sem limites
	if filters.DateRange == domain.DateRangeCustom && (filters.StartDate == nil || filters.EndDate == nil) {
		return nil, errEmptyCustomRange
	}

	return filters, nil
}
