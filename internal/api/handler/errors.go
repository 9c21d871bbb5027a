package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/conversing"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
)

// writeUsecaseError traduz erros dos casos de uso para o formato padrão da API
func writeUsecaseError(w http.ResponseWriter, err error) {
	var accErr *account.AccountError
	if errors.As(err, &accErr) {
		apiErrors.WriteError(w, accErr.Code, accErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountIDRequired), errors.Is(err, conversing.ErrEmptyMessage):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, account.ErrDatabaseOperation), errors.Is(err, account.ErrFetchAccounts):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
