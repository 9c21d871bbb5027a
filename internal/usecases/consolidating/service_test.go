package consolidating

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ads-assistant-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	accountmocks "github.com/vfg2006/ads-assistant-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"

	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Insights: config.Insights{
			HighConversionRate:     0.05,
			MediumConversionRate:   0.02,
			LowConversionRate:      0.01,
			LowCostPerConversion:   50,
			HighCostPerConversion:  100,
			BudgetAdjustmentFactor: 0.2,
			KeywordMinClicks:       10,
			KeywordLowCPC:          2,
			KeywordHighCPC:         5,
			CacheTTLHours:          1,
		},
	}
}

func connectedAccount() *domain.Account {
	return &domain.Account{
		ID:         "ACC001",
		CustomerID: "1234567890",
		Name:       "Ótica Central",
		Currency:   "BRL",
		Status:     domain.AccountStatusConnected,
	}
}

func rawCampaigns() []adsdomain.Campaign {
	return []adsdomain.Campaign{
		{
			ID:           "C1",
			Name:         "Busca - Óculos de Grau",
			Status:       "ENABLED",
			BudgetMicros: 100000000,
			Metrics: adsdomain.RawMetrics{
				Clicks:      100,
				Impressions: 2000,
				CostMicros:  200000000,
				Conversions: 6,
			},
		},
	}
}

func TestService_GetConsolidatedAccountData(t *testing.T) {
	filters := &domain.InsightFilters{DateRange: domain.DateRangeLast30Days}

	tests := []struct {
		name    string
		setup   func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService)
		execute func(t *testing.T, service Consolidator)
	}{
		{
			name: "Conta não autorizada propaga o erro sem consultar a plataforma",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().
					GetAuthorizedAccount("ACC001").
					Return(nil, errors.New("account is not connected"))
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", filters)

				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Busca ao vivo normaliza micro-unidades e grava no cache",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().GetAuthorizedAccount("ACC001").Return(connectedAccount(), nil)

				cache.EXPECT().Get("ACC001", gomock.Any()).Return(nil, nil).Times(3)

				ads.EXPECT().GetCampaigns("1234567890", filters).Return(rawCampaigns(), nil)
				ads.EXPECT().GetAdGroups("1234567890", filters).Return([]adsdomain.AdGroup{}, nil)
				ads.EXPECT().GetKeywords("1234567890", filters).Return([]adsdomain.Keyword{}, nil)

				cache.EXPECT().Set("ACC001", gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(nil).Times(3)
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", filters)

				assert.NoError(t, err)
				assert.Len(t, result.Campaigns, 1)

				campaign := result.Campaigns[0]
				assert.Equal(t, 100.0, campaign.Budget)
				assert.Equal(t, 200.0, campaign.Metrics.Cost)
				assert.Equal(t, 0.05, campaign.Metrics.CTR)
				assert.Equal(t, 2.0, campaign.Metrics.CPC)

				assert.Equal(t, int64(100), result.Aggregates.TotalClicks)
				assert.Equal(t, 200.0, result.Aggregates.TotalCost)
				assert.Equal(t, 1, result.Aggregates.ActiveCampaigns)
				assert.Equal(t, domain.TierHigh, result.Insights.CampaignTiers["C1"])
			},
		},
		{
			name: "Cache hit evita a busca ao vivo do dataset",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().GetAuthorizedAccount("ACC001").Return(connectedAccount(), nil)

				cached, _ := json.Marshal([]*domain.Campaign{
					{ID: "C1", Name: "Busca", Status: domain.EntityStatusEnabled, Budget: 100, Metrics: &domain.Metrics{Clicks: 100, Cost: 200, Conversions: 6}},
				})
				cache.EXPECT().
					Get("ACC001", filters.CacheKey(domain.DatasetCampaigns)).
					Return(&domain.CacheEntry{Data: cached, ExpiresAt: time.Now().Add(time.Hour)}, nil)
				cache.EXPECT().
					Get("ACC001", filters.CacheKey(domain.DatasetAdGroups)).
					Return(nil, nil)
				cache.EXPECT().
					Get("ACC001", filters.CacheKey(domain.DatasetKeywords)).
					Return(nil, nil)

				ads.EXPECT().GetAdGroups("1234567890", filters).Return([]adsdomain.AdGroup{}, nil)
				ads.EXPECT().GetKeywords("1234567890", filters).Return([]adsdomain.Keyword{}, nil)

				cache.EXPECT().Set("ACC001", gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(nil).Times(2)
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", filters)

				assert.NoError(t, err)
				assert.Len(t, result.Campaigns, 1)
				assert.Equal(t, "C1", result.Campaigns[0].ID)
			},
		},
		{
			name: "Entrada de cache vencida é tratada como miss e dispara busca ao vivo",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().GetAuthorizedAccount("ACC001").Return(connectedAccount(), nil)

				stale, _ := json.Marshal([]*domain.Campaign{
					{ID: "C9", Name: "Antiga", Status: domain.EntityStatusEnabled},
				})
				cache.EXPECT().
					Get("ACC001", filters.CacheKey(domain.DatasetCampaigns)).
					Return(&domain.CacheEntry{Data: stale, ExpiresAt: time.Now().Add(-time.Minute)}, nil)
				cache.EXPECT().Get("ACC001", gomock.Any()).Return(nil, nil).Times(2)

				ads.EXPECT().GetCampaigns("1234567890", filters).Return(rawCampaigns(), nil)
				ads.EXPECT().GetAdGroups("1234567890", filters).Return([]adsdomain.AdGroup{}, nil)
				ads.EXPECT().GetKeywords("1234567890", filters).Return([]adsdomain.Keyword{}, nil)

				cache.EXPECT().Set("ACC001", gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(nil).Times(3)
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", filters)

				assert.NoError(t, err)
				assert.Len(t, result.Campaigns, 1)
				// O payload vencido nunca aparece no resultado
				assert.Equal(t, "C1", result.Campaigns[0].ID)
			},
		},
		{
			name: "Falha parcial degrada o dataset para coleção vazia",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().GetAuthorizedAccount("ACC001").Return(connectedAccount(), nil)

				cache.EXPECT().Get("ACC001", gomock.Any()).Return(nil, nil).Times(3)

				ads.EXPECT().GetCampaigns("1234567890", filters).Return(rawCampaigns(), nil)
				ads.EXPECT().GetAdGroups("1234567890", filters).Return(nil, errors.New("quota exceeded"))
				ads.EXPECT().GetKeywords("1234567890", filters).Return(nil, errors.New("quota exceeded"))

				// Só o dataset bem-sucedido vai para o cache
				cache.EXPECT().Set("ACC001", gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(nil)
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", filters)

				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result.Campaigns, 1)
				assert.Empty(t, result.AdGroups)
				assert.Empty(t, result.Keywords)
				assert.NotNil(t, result.Insights)
			},
		},
		{
			name: "Filtros ausentes assumem os últimos 30 dias",
			setup: func(ads *mocks.MockAdsDataClient, cache *repomocks.MockMetricsCacheRepository, accounts *accountmocks.MockAccountService) {
				accounts.EXPECT().GetAuthorizedAccount("ACC001").Return(connectedAccount(), nil)

				cache.EXPECT().Get("ACC001", gomock.Any()).Return(nil, nil).Times(3)

				defaulted := gomock.AssignableToTypeOf(&domain.InsightFilters{})
				ads.EXPECT().GetCampaigns("1234567890", defaulted).Return([]adsdomain.Campaign{}, nil)
				ads.EXPECT().GetAdGroups("1234567890", defaulted).Return([]adsdomain.AdGroup{}, nil)
				ads.EXPECT().GetKeywords("1234567890", defaulted).Return([]adsdomain.Keyword{}, nil)

				cache.EXPECT().Set("ACC001", gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(nil).Times(3)
			},
			execute: func(t *testing.T, service Consolidator) {
				result, err := service.GetConsolidatedAccountData("ACC001", nil)

				assert.NoError(t, err)
				assert.Empty(t, result.Campaigns)
				assert.NotNil(t, result.Aggregates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ads := mocks.NewMockAdsDataClient(ctrl)
			cache := repomocks.NewMockMetricsCacheRepository(ctrl)
			accounts := accountmocks.NewMockAccountService(ctrl)
			tt.setup(ads, cache, accounts)

			engine := insighting.NewEngine(testConfig().Insights)
			service := NewService(testConfig(), ads, cache, accounts, engine, nil)

			tt.execute(t, service)
		})
	}
}
