package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating"
)

// AccountSyncService gerencia a sincronização periódica das contas conectadas.
// As contas são processadas em lotes pequenos para limitar as chamadas
// simultâneas à plataforma de anúncios.
type AccountSyncService struct {
	scheduler    *gocron.Scheduler
	config       config.AccountSync
	accountRepo  repository.AccountRepository
	dailyRepo    repository.DailyMetricsRepository
	consolidator consolidating.Consolidator
	syncRunning  bool
	syncMutex    sync.Mutex
	lastSyncedAt time.Time
}

func NewAccountSyncService(
	accountRepo repository.AccountRepository,
	dailyRepo repository.DailyMetricsRepository,
	consolidator consolidating.Consolidator,
	appConfig *config.Config,
) *AccountSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":         appConfig.AccountSync.CronSchedule,
		"batch_size":            appConfig.AccountSync.BatchSize,
		"request_delay_seconds": appConfig.AccountSync.RequestDelaySeconds,
		"sync_enabled":          appConfig.AccountSync.Enabled,
	}).Info("Configuração do agendador de sincronização de contas carregada")

	return &AccountSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       appConfig.AccountSync,
		accountRepo:  accountRepo,
		dailyRepo:    dailyRepo,
		consolidator: consolidator,
	}
}

// Start inicia o agendador
func (s *AccountSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização fora do horário agendado
func (s *AccountSyncService) TriggerManualSync() {
	go s.syncAllAccounts()
}

func (s *AccountSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de todas as contas conectadas")

	accounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta conectada encontrada para sincronização")
		return
	}

	s.processAccountsInBatches(accounts)

	s.lastSyncedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
	}).Info("Sincronização de contas concluída")
}

// processAccountsInBatches limita os workers concorrentes ao tamanho do lote
// configurado, o único mecanismo de backpressure contra a plataforma
func (s *AccountSyncService) processAccountsInBatches(accounts []*domain.Account) {
	semaphore := make(chan struct{}, s.config.BatchSize)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncAccount(acc)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()
}

func (s *AccountSyncService) syncAccount(account *domain.Account) {
	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"customer_id":  account.CustomerID,
		"account_name": account.Name,
	}).Info("Sincronizando conta")

	yesterday := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	filters := &domain.InsightFilters{
		DateRange: domain.DateRangeCustom,
		StartDate: &yesterday,
		EndDate:   &yesterday,
	}

	consolidated, err := s.consolidator.GetConsolidatedAccountData(account.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao consolidar dados da conta durante a sincronização")
		return
	}

	s.saveDailyMetrics(account.ID, consolidated.Campaigns, yesterday)

	if err := s.accountRepo.UpdateLastSyncedAt(account.ID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao atualizar o último sync da conta")
	}
}

// saveDailyMetrics persiste o snapshot diário das campanhas, o insumo do
// cálculo de tendências semana contra semana
func (s *AccountSyncService) saveDailyMetrics(accountID string, campaigns []*domain.Campaign, date time.Time) {
	for _, campaign := range campaigns {
		entry := &domain.DailyMetricEntry{
			AccountID:  accountID,
			EntityType: domain.EntityTypeCampaign,
			EntityID:   campaign.ID,
			EntityName: campaign.Name,
			Date:       date,
			Metrics:    campaign.Metrics,
		}

		if err := s.dailyRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  accountID,
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao salvar métrica diária da campanha")
		}
	}
}
