package contextbuilding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Insights: config.Insights{
			HighConversionRate:    0.05,
			MediumConversionRate:  0.02,
			LowConversionRate:     0.01,
			LowCostPerConversion:  50,
			HighCostPerConversion: 100,
			CacheTTLHours:         1,
		},
	}
}

func newTestService(consolidator *mocks.MockConsolidator) *Service {
	cfg := testConfig()
	return &Service{
		cfg:          cfg,
		consolidator: consolidator,
		engine:       insighting.NewEngine(cfg.Insights),
		selector:     relevance.NewSelector(),
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClassifyFreshness(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		lastSyncedAt *time.Time
		expected     domain.DataFreshness
	}{
		{
			name:         "Conta nunca sincronizada é indisponível",
			lastSyncedAt: nil,
			expected:     domain.FreshnessUnavailable,
		},
		{
			name:         "Sincronizada há 1 hora é fresca",
			lastSyncedAt: timePtr(now.Add(-1 * time.Hour)),
			expected:     domain.FreshnessFresh,
		},
		{
			name:         "Sincronizada há 10 horas é defasada",
			lastSyncedAt: timePtr(now.Add(-10 * time.Hour)),
			expected:     domain.FreshnessStale,
		},
		{
			name:         "Sincronizada há 30 horas é indisponível",
			lastSyncedAt: timePtr(now.Add(-30 * time.Hour)),
			expected:     domain.FreshnessUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyFreshness(tt.lastSyncedAt, now))
		})
	}
}

func TestCompletenessScore(t *testing.T) {
	base := &domain.ConsolidatedAccountData{
		Account: &domain.Account{},
	}
	assert.Equal(t, 0.0, CompletenessScore(base))

	connected := &domain.ConsolidatedAccountData{
		Account: &domain.Account{
			Name:         "Ótica Central",
			Currency:     "BRL",
			Status:       domain.AccountStatusConnected,
			LastSyncedAt: timePtr(time.Now()),
		},
	}
	withoutEntities := CompletenessScore(connected)
	assert.Equal(t, 0.6, withoutEntities)

	connected.Campaigns = []*domain.Campaign{{ID: "C1"}}
	withCampaigns := CompletenessScore(connected)
	assert.Greater(t, withCampaigns, withoutEntities)

	connected.AdGroups = []*domain.AdGroup{{ID: "G1"}}
	connected.Keywords = []*domain.Keyword{{ID: "K1"}}
	full := CompletenessScore(connected)
	assert.Equal(t, 1.0, full)
	assert.GreaterOrEqual(t, full, withCampaigns)
}

func TestService_HealthScore(t *testing.T) {
	service := newTestService(nil)

	tests := []struct {
		name     string
		data     *domain.ConsolidatedAccountData
		expected int
	}{
		{
			name: "Conta desconectada sem dados pontua zero",
			data: &domain.ConsolidatedAccountData{
				Account: &domain.Account{Status: domain.AccountStatusDisconnected},
			},
			expected: 0,
		},
		{
			name: "Conta saudável com custo por conversão baixo pontua 100",
			data: &domain.ConsolidatedAccountData{
				Account: &domain.Account{
					Status:       domain.AccountStatusConnected,
					LastSyncedAt: timePtr(time.Now().Add(-2 * time.Hour)),
				},
				Aggregates: &domain.AccountAggregates{
					ActiveCampaigns:  3,
					TotalCost:        200,
					TotalConversions: 10,
				},
			},
			expected: 100,
		},
		{
			name: "Sync antigo e custo por conversão intermediário pontuam parcialmente",
			data: &domain.ConsolidatedAccountData{
				Account: &domain.Account{
					Status:       domain.AccountStatusConnected,
					LastSyncedAt: timePtr(time.Now().Add(-48 * time.Hour)),
				},
				Aggregates: &domain.AccountAggregates{
					ActiveCampaigns:  1,
					TotalCost:        800,
					TotalConversions: 10,
				},
			},
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.HealthScore(tt.data))
		})
	}
}

func TestService_PrepareAIContext(t *testing.T) {
	filters := &domain.InsightFilters{DateRange: domain.DateRangeLast30Days}

	consolidated := func() *domain.ConsolidatedAccountData {
		campaigns := []*domain.Campaign{
			{
				ID:      "C1",
				Name:    "Busca - Óculos",
				Status:  domain.EntityStatusEnabled,
				Budget:  100,
				Metrics: &domain.Metrics{Clicks: 100, Cost: 200, Conversions: 6},
			},
			{
				ID:      "C2",
				Name:    "Display - Institucional",
				Status:  domain.EntityStatusEnabled,
				Budget:  100,
				Metrics: &domain.Metrics{Clicks: 80, Cost: 120, Conversions: 0},
			},
		}

		cfg := testConfig()
		engine := insighting.NewEngine(cfg.Insights)
		insights := engine.GenerateInsights(campaigns, nil, nil)
		insights.PerformanceTrends = []*domain.PerformanceTrend{
			{Metric: "all", Direction: domain.TrendUnavailable, Significance: "none"},
		}

		return &domain.ConsolidatedAccountData{
			Account: &domain.Account{
				ID:           "ACC001",
				Name:         "Ótica Central",
				Currency:     "BRL",
				Status:       domain.AccountStatusConnected,
				LastSyncedAt: timePtr(time.Now().Add(-1 * time.Hour)),
			},
			Campaigns: campaigns,
			Aggregates: &domain.AccountAggregates{
				TotalClicks:      180,
				TotalCost:        320,
				TotalConversions: 6,
				ActiveCampaigns:  2,
			},
			Insights: insights,
		}
	}

	t.Run("Monta o pacote estruturado e narrativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		consolidator := mocks.NewMockConsolidator(ctrl)
		consolidator.EXPECT().
			GetConsolidatedAccountData("ACC001", filters).
			Return(consolidated(), nil)

		bundle, err := newTestService(consolidator).PrepareAIContext("ACC001", filters, "")

		assert.NoError(t, err)
		assert.Nil(t, bundle.QuerySpecificData)

		structured := bundle.StructuredData
		assert.Equal(t, "ACC001", structured.AccountSummary.AccountID)
		assert.Equal(t, 2, structured.AccountSummary.ActiveCampaignCount)
		assert.Equal(t, domain.FreshnessFresh, structured.AccountSummary.DataFreshness)

		// A campanha que gastou sem converter precisa aparecer nos pontos
		// de atenção e nas recomendações
		assert.NotEmpty(t, structured.InsightsSummary.MainConcerns)
		assert.Contains(t, structured.InsightsSummary.MainConcerns[0], "Display - Institucional")
		assert.NotEmpty(t, structured.ActionableRecommendations)

		// Recomendações vêm ordenadas por peso da prioridade vezes confiança
		first := structured.ActionableRecommendations[0]
		assert.Equal(t, "budget_adjustment", first.Type)
		assert.Equal(t, domain.PriorityHigh, first.Priority)

		assert.NotEmpty(t, bundle.NaturalLanguage.ExecutiveSummary)
		assert.NotEmpty(t, bundle.NaturalLanguage.DataQualityNote)
		assert.GreaterOrEqual(t, structured.ContextMetadata.HealthScore, 80)
	})

	t.Run("Query presente anexa o recorte relevante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		consolidator := mocks.NewMockConsolidator(ctrl)
		consolidator.EXPECT().
			GetConsolidatedAccountData("ACC001", filters).
			Return(consolidated(), nil)

		bundle, err := newTestService(consolidator).PrepareAIContext("ACC001", filters, "quais campanhas convertem mais?")

		assert.NoError(t, err)
		assert.NotNil(t, bundle.QuerySpecificData)
		assert.Contains(t, bundle.QuerySpecificData.Focus, domain.FocusCampaigns)
	})

	t.Run("Erro da consolidação é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		consolidator := mocks.NewMockConsolidator(ctrl)
		consolidator.EXPECT().
			GetConsolidatedAccountData("ACC001", filters).
			Return(nil, errors.New("account is not connected"))

		bundle, err := newTestService(consolidator).PrepareAIContext("ACC001", filters, "")

		assert.Error(t, err)
		assert.Nil(t, bundle)
	})
}
