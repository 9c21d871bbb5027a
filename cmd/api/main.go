package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-assistant-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/api"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/scheduler"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/conversing"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	cacheRepo := repository.NewMetricsCacheRepository(pgConn)
	dailyMetricsRepo := repository.NewDailyMetricsRepository(pgConn)

	tokenManager := adsclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	adsClient := adsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, adsClient)

	accountService := account.NewService(accountRepo, cfg)

	engine := insighting.NewEngine(cfg.Insights)
	trendAnalyzer := insighting.NewTrendAnalyzer(dailyMetricsRepo)

	consolidator := consolidating.NewService(
		cfg,
		adsIntegrator,
		cacheRepo,
		accountService,
		engine,
		trendAnalyzer,
	)

	selector := relevance.NewSelector()
	contextBuilder := contextbuilding.NewService(cfg, consolidator, engine, selector)

	llmProvider := openai.NewProvider(cfg)
	conversation := conversing.NewService(contextBuilder, llmProvider)

	accountSyncService := scheduler.NewAccountSyncService(
		accountRepo,
		dailyMetricsRepo,
		consolidator,
		cfg,
	)

	cacheCleanupService := scheduler.NewCacheCleanupService(
		cacheRepo,
		dailyMetricsRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := accountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de contas")
	} else {
		logrus.Info("Agendador de sincronização de contas iniciado com sucesso")
	}

	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de cache")
	} else {
		logrus.Info("Agendador de limpeza de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		contextBuilder,
		selector,
		conversation,
		accountSyncService,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
