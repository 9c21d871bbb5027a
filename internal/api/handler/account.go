package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/ads-assistant-api/pkg/log"
)

func ListAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := service.ListAccounts()
		if err != nil {
			logger.WithError(err).Error("accounts: failed to list accounts")
			writeUsecaseError(w, err)
			return
		}

		logger.WithField("total", len(accounts)).Info("accounts: accounts listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func RegisterAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RegisterAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("accounts: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		if req.CustomerID == "" || req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id e name são obrigatórios", nil)
			return
		}

		created, err := service.RegisterAccount(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": req.CustomerID,
				"error":       err.Error(),
			}).Error("accounts: failed to register account")
			writeUsecaseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
		}
	})
}
