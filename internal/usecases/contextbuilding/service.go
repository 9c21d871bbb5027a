package contextbuilding

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/consolidating"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/relevance"
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

const (
	maxSnapshotCampaigns = 5

	// Janelas do classificador de frescor dos dados
	freshWindow = 6 * time.Hour
	staleWindow = 24 * time.Hour
)

// ContextBuilder monta o pacote de contexto entregue à camada de conversação
type ContextBuilder interface {
	// PrepareAIContext consolida os dados, gera os insights e monta o
	// pacote estruturado + narrativo. Quando query é informada, o
	// recorte relevante já vem anexado ao pacote.
	PrepareAIContext(accountID string, filters *domain.InsightFilters, query string) (*domain.AIContextBundle, error)
}

type Service struct {
	cfg          *config.Config
	consolidator consolidating.Consolidator
	engine       *insighting.Engine
	selector     *relevance.Selector
}

func NewService(
	cfg *config.Config,
	consolidator consolidating.Consolidator,
	engine *insighting.Engine,
	selector *relevance.Selector,
) ContextBuilder {
	return &Service{
		cfg:          cfg,
		consolidator: consolidator,
		engine:       engine,
		selector:     selector,
	}
}

func (s *Service) PrepareAIContext(accountID string, filters *domain.InsightFilters, query string) (*domain.AIContextBundle, error) {
	consolidated, err := s.consolidator.GetConsolidatedAccountData(accountID, filters)
	if err != nil {
		return nil, err
	}

	structured := s.buildStructuredData(consolidated)
	narrative := buildNarrative(structured)

	bundle := &domain.AIContextBundle{
		StructuredData:  structured,
		NaturalLanguage: narrative,
		Consolidated:    consolidated,
	}

	if query != "" {
		bundle.QuerySpecificData = s.selector.SelectRelevantContext(query, bundle)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"health":       structured.ContextMetadata.HealthScore,
		"completeness": structured.ContextMetadata.CompletenessScore,
		"freshness":    structured.ContextMetadata.Freshness,
	}).Info("Contexto de IA montado")

	return bundle, nil
}

func (s *Service) buildStructuredData(data *domain.ConsolidatedAccountData) *domain.AIContextData {
	freshness := ClassifyFreshness(data.Account.LastSyncedAt, time.Now())

	return &domain.AIContextData{
		AccountSummary:            buildAccountSummary(data, freshness),
		PerformanceSnapshot:       s.buildPerformanceSnapshot(data),
		InsightsSummary:           buildInsightsSummary(data.Insights),
		ActionableRecommendations: buildRecommendations(data.Insights),
		ContextMetadata: &domain.ContextMetadata{
			HealthScore:       s.HealthScore(data),
			CompletenessScore: CompletenessScore(data),
			Freshness:         freshness,
			GeneratedAt:       time.Now(),
		},
	}
}

// ClassifyFreshness aplica a máquina de estados de frescor: sem sync é
// indisponível; até 6h é fresco; até 24h é defasado; além disso os dados
// são tratados como indisponíveis
func ClassifyFreshness(lastSyncedAt *time.Time, now time.Time) domain.DataFreshness {
	if lastSyncedAt == nil {
		return domain.FreshnessUnavailable
	}

	age := now.Sub(*lastSyncedAt)
	switch {
	case age < freshWindow:
		return domain.FreshnessFresh
	case age < staleWindow:
		return domain.FreshnessStale
	default:
		return domain.FreshnessUnavailable
	}
}

// CompletenessScore avalia a checklist ponderada de completude dos dados,
// normalizada em [0,1]. O score só cresce conforme mais tipos de entidade
// chegam preenchidos.
func CompletenessScore(data *domain.ConsolidatedAccountData) float64 {
	score := 0.0

	if data.Account != nil && data.Account.Name != "" {
		score += 0.15
	}
	if data.Account != nil && data.Account.Currency != "" {
		score += 0.10
	}
	if data.Account != nil && data.Account.LastSyncedAt != nil {
		score += 0.15
	}
	if data.Account.IsConnected() {
		score += 0.20
	}
	if len(data.Campaigns) > 0 {
		score += 0.20
	}

	// Checagens de riqueza: grupos de anúncios e palavras-chave
	if len(data.AdGroups) > 0 {
		score += 0.10
	}
	if len(data.Keywords) > 0 {
		score += 0.10
	}

	return utils.RoundWithTwoDecimalPlace(score)
}

// HealthScore pontua a saúde geral da conta de 0 a 100
func (s *Service) HealthScore(data *domain.ConsolidatedAccountData) int {
	score := 0

	if data.Account.IsConnected() {
		score += 20
	}

	if data.Account.LastSyncedAt != nil {
		age := time.Since(*data.Account.LastSyncedAt)
		if age < 24*time.Hour {
			score += 20
		} else if age < 72*time.Hour {
			score += 10
		}
	}

	if data.Aggregates != nil && data.Aggregates.ActiveCampaigns > 0 {
		score += 20
	}

	if data.Aggregates != nil && data.Aggregates.TotalConversions > 0 {
		score += 20

		costPerConversion := utils.SafeDivide(data.Aggregates.TotalCost, data.Aggregates.TotalConversions)
		if costPerConversion < s.cfg.Insights.LowCostPerConversion {
			score += 20
		} else if costPerConversion < s.cfg.Insights.HighCostPerConversion {
			score += 10
		}
	}

	return score
}

func buildAccountSummary(data *domain.ConsolidatedAccountData, freshness domain.DataFreshness) *domain.AccountSummary {
	activeCampaigns := 0
	for _, campaign := range data.Campaigns {
		if campaign.IsActive() {
			activeCampaigns++
		}
	}

	return &domain.AccountSummary{
		AccountID:           data.Account.ID,
		AccountName:         data.Account.Name,
		Currency:            data.Account.Currency,
		CampaignCount:       len(data.Campaigns),
		ActiveCampaignCount: activeCampaigns,
		ConnectionStatus:    data.Account.Status,
		DataFreshness:       freshness,
	}
}

func (s *Service) buildPerformanceSnapshot(data *domain.ConsolidatedAccountData) *domain.PerformanceSnapshot {
	tierDistribution := map[domain.PerformanceTier]int{
		domain.TierHigh:   0,
		domain.TierMedium: 0,
		domain.TierLow:    0,
	}
	for _, tier := range data.Insights.CampaignTiers {
		tierDistribution[tier]++
	}

	topCampaigns := make([]*domain.CampaignHighlight, 0, maxSnapshotCampaigns)
	for _, campaign := range data.Insights.TopPerformingCampaigns {
		if len(topCampaigns) >= maxSnapshotCampaigns {
			break
		}
		topCampaigns = append(topCampaigns, &domain.CampaignHighlight{
			ID:             campaign.ID,
			Name:           campaign.Name,
			Tier:           s.engine.PerformanceTier(campaign),
			Clicks:         campaign.Metrics.Clicks,
			Cost:           utils.RoundWithTwoDecimalPlace(campaign.Metrics.Cost),
			Conversions:    campaign.Metrics.Conversions,
			ConversionRate: utils.RoundWithTwoDecimalPlace(campaign.Metrics.ConversionRate()),
		})
	}

	return &domain.PerformanceSnapshot{
		Aggregates:        data.Aggregates,
		TopCampaigns:      topCampaigns,
		TierDistribution:  tierDistribution,
		SpendDistribution: data.Insights.SpendDistribution,
	}
}

func buildInsightsSummary(insights *domain.AccountInsights) *domain.InsightsSummary {
	opportunities := make([]string, 0)
	concerns := make([]string, 0)

	for _, campaign := range insights.TopPerformingCampaigns {
		opportunities = append(opportunities, fmt.Sprintf(
			"Campanha %q converte bem (%.1f%%); há espaço para escalar",
			campaign.Name, campaign.Metrics.ConversionRate()*100,
		))
	}

	for _, opportunity := range insights.KeywordOpportunities {
		if opportunity.OpportunityType == domain.OpportunityBidIncrease && opportunity.RecommendedAction != "" {
			opportunities = append(opportunities, fmt.Sprintf(
				"Palavra-chave %q tem conversão alta com CPC baixo", opportunity.KeywordText,
			))
		}
	}

	for _, campaign := range insights.UnderperformingCampaigns {
		concerns = append(concerns, fmt.Sprintf(
			"Campanha %q gastou %.2f sem gerar conversões",
			campaign.Name, campaign.Metrics.Cost,
		))
	}

	for _, recommendation := range insights.BudgetRecommendations {
		if recommendation.RecommendedBudget < recommendation.CurrentBudget {
			concerns = append(concerns, fmt.Sprintf(
				"Campanha %q está com custo por conversão alto; considere reduzir o orçamento",
				recommendation.CampaignName,
			))
		}
	}

	return &domain.InsightsSummary{
		Opportunities: opportunities,
		MainConcerns:  concerns,
		Trends:        insights.PerformanceTrends,
	}
}

var priorityWeights = map[domain.RecommendationPriority]float64{
	domain.PriorityHigh:   3,
	domain.PriorityMedium: 2,
	domain.PriorityLow:    1,
}

// buildRecommendations mescla as recomendações de orçamento, campanhas e
// palavras-chave e ranqueia por peso da prioridade vezes confiança
func buildRecommendations(insights *domain.AccountInsights) []*domain.Recommendation {
	recommendations := make([]*domain.Recommendation, 0)

	for _, budgetRec := range insights.BudgetRecommendations {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:            "budget_adjustment",
			Priority:        domain.PriorityHigh,
			ConfidenceScore: 0.8,
			Description: fmt.Sprintf(
				"Ajustar o orçamento da campanha %q de %.2f para %.2f: %s",
				budgetRec.CampaignName, budgetRec.CurrentBudget, budgetRec.RecommendedBudget, budgetRec.Reason,
			),
			Impact: budgetRec.PotentialImpact,
		})
	}

	for _, campaign := range insights.UnderperformingCampaigns {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:            "campaign_review",
			Priority:        domain.PriorityHigh,
			ConfidenceScore: 0.75,
			Description: fmt.Sprintf(
				"Revisar a campanha %q: gasto de %.2f sem conversões no período",
				campaign.Name, campaign.Metrics.Cost,
			),
			Impact: "reduzir gasto sem retorno",
		})
	}

	for _, opportunity := range insights.KeywordOpportunities {
		if opportunity.RecommendedAction == "" {
			continue
		}

		priority := domain.PriorityMedium
		confidence := 0.7
		if opportunity.OpportunityType == domain.OpportunityBidDecrease {
			priority = domain.PriorityLow
			confidence = 0.6
		}

		recommendations = append(recommendations, &domain.Recommendation{
			Type:            "keyword_bid",
			Priority:        priority,
			ConfidenceScore: confidence,
			Description:     fmt.Sprintf("Palavra-chave %q: %s", opportunity.KeywordText, opportunity.RecommendedAction),
			Impact:          "otimização de lances",
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		scoreI := priorityWeights[recommendations[i].Priority] * recommendations[i].ConfidenceScore
		scoreJ := priorityWeights[recommendations[j].Priority] * recommendations[j].ConfidenceScore
		return scoreI > scoreJ
	})

	return recommendations
}
