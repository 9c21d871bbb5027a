package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/internal/api/handler"
	"github.com/vfg2006/ads-assistant-api/internal/api/handler/router"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/scheduler"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/conversing"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
	"github.com/vfg2006/ads-assistant-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	accountService account.AccountService,
	contextBuilder contextbuilding.ContextBuilder,
	selector *relevance.Selector,
	conversation conversing.Conversation,
	accountSyncService *scheduler.AccountSyncService,
	cacheCleanupService *scheduler.CacheCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		AccountSyncService:  accountSyncService,
		CacheCleanupService: cacheCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Accounts(accountService)...),
		router.WithRoutes(handler.AIContext(contextBuilder)...),
		router.WithRoutes(handler.Relevance(contextBuilder, selector)...),
		router.WithRoutes(handler.Chat(conversation)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
