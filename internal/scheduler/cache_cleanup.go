package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/config"
)

// CacheCleanupService remove entradas de cache expiradas e métricas diárias
// antigas. A limpeza é melhor esforço: o frescor do cache é garantido na
// leitura, não aqui.
type CacheCleanupService struct {
	scheduler *gocron.Scheduler
	config    config.CacheCleanup
	cacheRepo repository.MetricsCacheRepository
	dailyRepo repository.DailyMetricsRepository
}

func NewCacheCleanupService(
	cacheRepo repository.MetricsCacheRepository,
	dailyRepo repository.DailyMetricsRepository,
	appConfig *config.Config,
) *CacheCleanupService {
	return &CacheCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.CacheCleanup,
		cacheRepo: cacheRepo,
		dailyRepo: dailyRepo,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup executa uma rodada de limpeza imediatamente
func (s *CacheCleanupService) RunCleanup() {
	startTime := time.Now()

	removedEntries, err := s.cacheRepo.CleanupExpired()
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover entradas expiradas do cache")
	}

	removedDailyRows, err := s.dailyRepo.DeleteOlderThan(s.config.DailyRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover métricas diárias antigas")
	}

	logrus.WithFields(logrus.Fields{
		"cache_entries":  removedEntries,
		"daily_rows":     removedDailyRows,
		"retention_days": s.config.DailyRetentionDays,
		"duration":       time.Since(startTime).String(),
	}).Info("Limpeza de cache concluída")
}
