package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ads-assistant-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating/mocks"
	"go.uber.org/mock/gomock"
)

func syncConfig() *config.Config {
	return &config.Config{
		AccountSync: config.AccountSync{
			Enabled:             true,
			CronSchedule:        "0 3 * * *",
			BatchSize:           3,
			RequestDelaySeconds: 0,
		},
	}
}

func connectedAccounts(n int) []*domain.Account {
	accounts := make([]*domain.Account, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, &domain.Account{
			ID:         string(rune('A'+i)) + "CC001",
			CustomerID: "123456789" + string(rune('0'+i)),
			Status:     domain.AccountStatusConnected,
		})
	}
	return accounts
}

func TestAccountSyncService_SyncAllAccounts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(accounts *repomocks.MockAccountRepository, daily *repomocks.MockDailyMetricsRepository, consolidator *mocks.MockConsolidator)
	}{
		{
			name: "Sincroniza só as contas conectadas e persiste o snapshot diário das campanhas",
			setup: func(accounts *repomocks.MockAccountRepository, daily *repomocks.MockDailyMetricsRepository, consolidator *mocks.MockConsolidator) {
				listed := connectedAccounts(2)
				accounts.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected}).
					Return(listed, nil)

				for _, acc := range listed {
					consolidator.EXPECT().
						GetConsolidatedAccountData(acc.ID, gomock.Any()).
						Return(&domain.ConsolidatedAccountData{
							Account: acc,
							Campaigns: []*domain.Campaign{
								{ID: "C1", Name: "Busca", Metrics: &domain.Metrics{Clicks: 10, Cost: 5}},
							},
						}, nil)

					daily.EXPECT().
						SaveOrUpdate(gomock.Any()).
						DoAndReturn(func(entry *domain.DailyMetricEntry) error {
							assert.Equal(t, domain.EntityTypeCampaign, entry.EntityType)
							assert.Equal(t, "C1", entry.EntityID)
							assert.NotNil(t, entry.Metrics)
							return nil
						})

					accounts.EXPECT().UpdateLastSyncedAt(acc.ID, gomock.Any()).Return(nil)
				}
			},
		},
		{
			name: "Falha na consolidação de uma conta não derruba as demais",
			setup: func(accounts *repomocks.MockAccountRepository, daily *repomocks.MockDailyMetricsRepository, consolidator *mocks.MockConsolidator) {
				listed := connectedAccounts(2)
				accounts.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected}).
					Return(listed, nil)

				consolidator.EXPECT().
					GetConsolidatedAccountData(listed[0].ID, gomock.Any()).
					Return(nil, errors.New("quota exceeded"))

				consolidator.EXPECT().
					GetConsolidatedAccountData(listed[1].ID, gomock.Any()).
					Return(&domain.ConsolidatedAccountData{Account: listed[1]}, nil)
				accounts.EXPECT().UpdateLastSyncedAt(listed[1].ID, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Nenhuma conta conectada encerra sem sincronizar",
			setup: func(accounts *repomocks.MockAccountRepository, daily *repomocks.MockDailyMetricsRepository, consolidator *mocks.MockConsolidator) {
				accounts.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected}).
					Return([]*domain.Account{}, nil)
			},
		},
		{
			name: "Erro ao listar contas encerra sem sincronizar",
			setup: func(accounts *repomocks.MockAccountRepository, daily *repomocks.MockDailyMetricsRepository, consolidator *mocks.MockConsolidator) {
				accounts.EXPECT().
					ListAccounts(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accounts := repomocks.NewMockAccountRepository(ctrl)
			daily := repomocks.NewMockDailyMetricsRepository(ctrl)
			consolidator := mocks.NewMockConsolidator(ctrl)
			tt.setup(accounts, daily, consolidator)

			service := NewAccountSyncService(accounts, daily, consolidator, syncConfig())
			service.syncAllAccounts()
		})
	}
}

func TestAccountSyncService_SkipsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := repomocks.NewMockAccountRepository(ctrl)
	daily := repomocks.NewMockDailyMetricsRepository(ctrl)
	consolidator := mocks.NewMockConsolidator(ctrl)

	service := NewAccountSyncService(accounts, daily, consolidator, syncConfig())

	// Com a flag já levantada, a rodada retorna sem tocar no repositório
	service.syncRunning = true
	service.syncAllAccounts()
}
