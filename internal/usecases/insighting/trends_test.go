package insighting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func dailyEntries(clicks int64, cost, conversions float64) []*domain.DailyMetricEntry {
	return []*domain.DailyMetricEntry{
		{
			AccountID:  "ACC001",
			EntityType: domain.EntityTypeCampaign,
			EntityID:   "C1",
			Metrics: &domain.Metrics{
				Clicks:      clicks,
				Cost:        cost,
				Conversions: conversions,
			},
		},
	}
}

func TestTrendAnalyzer_ComputeTrends(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(dailyRepo *mocks.MockDailyMetricsRepository)
		validate func(t *testing.T, trends []*domain.PerformanceTrend)
	}{
		{
			name: "Sem histórico na janela atual retorna tendência indisponível",
			setup: func(dailyRepo *mocks.MockDailyMetricsRepository) {
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return([]*domain.DailyMetricEntry{}, nil)
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(100, 50, 2), nil)
			},
			validate: func(t *testing.T, trends []*domain.PerformanceTrend) {
				assert.Len(t, trends, 1)
				assert.Equal(t, "all", trends[0].Metric)
				assert.Equal(t, domain.TrendUnavailable, trends[0].Direction)
				assert.Equal(t, "none", trends[0].Significance)
			},
		},
		{
			name: "Erro do repositório retorna tendência indisponível",
			setup: func(dailyRepo *mocks.MockDailyMetricsRepository) {
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, trends []*domain.PerformanceTrend) {
				assert.Len(t, trends, 1)
				assert.Equal(t, domain.TrendUnavailable, trends[0].Direction)
			},
		},
		{
			name: "Janelas completas produzem tendências por métrica",
			setup: func(dailyRepo *mocks.MockDailyMetricsRepository) {
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(150, 100, 2), nil)
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(100, 100.5, 4), nil)
			},
			validate: func(t *testing.T, trends []*domain.PerformanceTrend) {
				assert.Len(t, trends, 3)

				// Cliques: 100 -> 150, +50%, significativo
				assert.Equal(t, "clicks", trends[0].Metric)
				assert.Equal(t, domain.TrendUp, trends[0].Direction)
				assert.Equal(t, 50.0, trends[0].ChangePercent)
				assert.Equal(t, "high", trends[0].Significance)

				// Custo: 100.5 -> 100, -0.5%, estável
				assert.Equal(t, "cost", trends[1].Metric)
				assert.Equal(t, domain.TrendFlat, trends[1].Direction)
				assert.Equal(t, "low", trends[1].Significance)

				// Conversões: 4 -> 2, -50%, queda significativa
				assert.Equal(t, "conversions", trends[2].Metric)
				assert.Equal(t, domain.TrendDown, trends[2].Direction)
				assert.Equal(t, -50.0, trends[2].ChangePercent)
				assert.Equal(t, "high", trends[2].Significance)
			},
		},
		{
			name: "Crescimento a partir do zero é reportado como 100%",
			setup: func(dailyRepo *mocks.MockDailyMetricsRepository) {
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(120, 80, 0), nil)
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(0, 0, 0), nil)
			},
			validate: func(t *testing.T, trends []*domain.PerformanceTrend) {
				assert.Len(t, trends, 3)

				assert.Equal(t, domain.TrendUp, trends[0].Direction)
				assert.Equal(t, 100.0, trends[0].ChangePercent)
				assert.Equal(t, "high", trends[0].Significance)

				// Conversões zeradas nas duas janelas ficam estáveis
				assert.Equal(t, domain.TrendFlat, trends[2].Direction)
				assert.Equal(t, 0.0, trends[2].ChangePercent)
				assert.Equal(t, "low", trends[2].Significance)
			},
		},
		{
			name: "Variação moderada entre 10% e 25%",
			setup: func(dailyRepo *mocks.MockDailyMetricsRepository) {
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(115, 115, 115), nil)
				dailyRepo.EXPECT().
					GetByDateRange("ACC001", domain.EntityTypeCampaign, gomock.Any(), gomock.Any()).
					Return(dailyEntries(100, 100, 100), nil)
			},
			validate: func(t *testing.T, trends []*domain.PerformanceTrend) {
				for _, trend := range trends {
					assert.Equal(t, domain.TrendUp, trend.Direction)
					assert.Equal(t, 15.0, trend.ChangePercent)
					assert.Equal(t, "moderate", trend.Significance)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dailyRepo := mocks.NewMockDailyMetricsRepository(ctrl)
			tt.setup(dailyRepo)

			analyzer := NewTrendAnalyzer(dailyRepo)
			tt.validate(t, analyzer.ComputeTrends("ACC001"))
		})
	}
}
