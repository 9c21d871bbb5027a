package handler

import (
	"net/http"

	"github.com/vfg2006/ads-assistant-api/internal/api/handler/router"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/conversing"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: RegisterAccount(service),
		},
	}
}

func AIContext(service contextbuilding.ContextBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/ai-context",
			Method:  http.MethodGet,
			Handler: GetAIContext(service),
		},
	}
}

func Relevance(builder contextbuilding.ContextBuilder, selector *relevance.Selector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/relevance",
			Method:  http.MethodPost,
			Handler: SelectRelevantContext(builder, selector),
		},
	}
}

func Chat(service conversing.Conversation) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/chat",
			Method:  http.MethodPost,
			Handler: StreamChat(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
	}
}
