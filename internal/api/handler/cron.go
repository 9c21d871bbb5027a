package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/internal/scheduler"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAccountSync  = "account-sync"
	CronJobTypeCacheCleanup = "cache-cleanup"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AccountSyncService  *scheduler.AccountSyncService
	CacheCleanupService *scheduler.CacheCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAccountSync:
			if services.AccountSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de contas não disponível", nil)
				return
			}
			services.AccountSyncService.TriggerManualSync()

		case CronJobTypeCacheCleanup:
			if services.CacheCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de cache não disponível", nil)
				return
			}
			go services.CacheCleanupService.RunCleanup()

		case CronJobTypeAll:
			if services.AccountSyncService != nil {
				services.AccountSyncService.TriggerManualSync()
			}
			if services.CacheCleanupService != nil {
				go services.CacheCleanupService.RunCleanup()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: account-sync, cache-cleanup, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}
