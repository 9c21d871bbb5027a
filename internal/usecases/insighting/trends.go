package insighting

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

const (
	trendWindowDays = 7
	trendWindow     = "last_7_days_vs_previous_7_days"
)

// TrendAnalyzer calcula tendências comparando a janela atual com a anterior
// a partir do histórico de métricas diárias. Quando não há histórico
// suficiente, as tendências são marcadas como indisponíveis em vez de
// fabricar números.
type TrendAnalyzer struct {
	dailyRepo repository.DailyMetricsRepository
}

func NewTrendAnalyzer(dailyRepo repository.DailyMetricsRepository) *TrendAnalyzer {
	return &TrendAnalyzer{dailyRepo: dailyRepo}
}

// ComputeTrends compara os últimos 7 dias com os 7 dias anteriores para
// cliques, custo e conversões da conta
func (t *TrendAnalyzer) ComputeTrends(accountID string) []*domain.PerformanceTrend {
	now := time.Now()
	currentStart := now.AddDate(0, 0, -trendWindowDays)
	previousStart := now.AddDate(0, 0, -2*trendWindowDays)

	current, err := t.dailyRepo.GetByDateRange(accountID, domain.EntityTypeCampaign, currentStart, now)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("Erro ao buscar métricas diárias da janela atual")
		return unavailableTrends()
	}

	previous, err := t.dailyRepo.GetByDateRange(accountID, domain.EntityTypeCampaign, previousStart, currentStart.AddDate(0, 0, -1))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("Erro ao buscar métricas diárias da janela anterior")
		return unavailableTrends()
	}

	if len(current) == 0 || len(previous) == 0 {
		return unavailableTrends()
	}

	currentTotals := sumDailyMetrics(current)
	previousTotals := sumDailyMetrics(previous)

	return []*domain.PerformanceTrend{
		buildTrend("clicks", float64(currentTotals.Clicks), float64(previousTotals.Clicks)),
		buildTrend("cost", currentTotals.Cost, previousTotals.Cost),
		buildTrend("conversions", currentTotals.Conversions, previousTotals.Conversions),
	}
}

func sumDailyMetrics(entries []*domain.DailyMetricEntry) *domain.Metrics {
	totals := &domain.Metrics{}
	for _, entry := range entries {
		if entry.Metrics == nil {
			continue
		}
		totals.Clicks += entry.Metrics.Clicks
		totals.Impressions += entry.Metrics.Impressions
		totals.Cost += entry.Metrics.Cost
		totals.Conversions += entry.Metrics.Conversions
	}
	return totals
}

func buildTrend(metric string, current, previous float64) *domain.PerformanceTrend {
	trend := &domain.PerformanceTrend{
		Metric: metric,
		Window: trendWindow,
	}

	if previous == 0 {
		if current == 0 {
			trend.Direction = domain.TrendFlat
			trend.Significance = "low"
			return trend
		}
		trend.Direction = domain.TrendUp
		trend.ChangePercent = 100
		trend.Significance = "high"
		return trend
	}

	change := utils.RoundWithTwoDecimalPlace(((current - previous) / previous) * 100)
	trend.ChangePercent = change

	switch {
	case change > 1:
		trend.Direction = domain.TrendUp
	case change < -1:
		trend.Direction = domain.TrendDown
	default:
		trend.Direction = domain.TrendFlat
	}

	abs := math.Abs(change)
	switch {
	case abs > 25:
		trend.Significance = "high"
	case abs > 10:
		trend.Significance = "moderate"
	default:
		trend.Significance = "low"
	}

	return trend
}

func unavailableTrends() []*domain.PerformanceTrend {
	return []*domain.PerformanceTrend{
		{
			Metric:       "all",
			Window:       trendWindow,
			Direction:    domain.TrendUnavailable,
			Significance: "none",
		},
	}
}
