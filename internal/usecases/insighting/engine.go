package insighting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

const (
	maxTopCampaigns          = 5
	maxBudgetRecommendations = 10
	maxKeywordOpportunities  = 20

	// Limiares de seleção de campanhas com problema
	underperformingMinCost        = 100.0
	underperformingMaxConversions = 1.0
)

// Engine aplica as regras de insights sobre as coleções consolidadas.
// Todas as saídas são funções puras das entradas; não há estado escondido.
type Engine struct {
	cfg config.Insights
}

func NewEngine(cfg config.Insights) *Engine {
	return &Engine{cfg: cfg}
}

// GenerateInsights produz o conjunto completo de insights da conta.
// Tendências vêm zeradas aqui; são preenchidas pelo TrendAnalyzer, que
// depende do histórico diário.
func (e *Engine) GenerateInsights(campaigns []*domain.Campaign, adGroups []*domain.AdGroup, keywords []*domain.Keyword) *domain.AccountInsights {
	return &domain.AccountInsights{
		CampaignTiers:            e.ClassifyCampaigns(campaigns),
		TopPerformingCampaigns:   e.TopPerformingCampaigns(campaigns),
		UnderperformingCampaigns: e.UnderperformingCampaigns(campaigns),
		BudgetRecommendations:    e.BudgetRecommendations(campaigns),
		KeywordOpportunities:     e.KeywordOpportunities(keywords),
		SpendDistribution:        e.SpendDistribution(campaigns),
		PerformanceTrends:        []*domain.PerformanceTrend{},
	}
}

// PerformanceTier classifica uma campanha pela taxa de conversão e custo por
// conversão. Campanhas sem cliques são sempre "low".
func (e *Engine) PerformanceTier(campaign *domain.Campaign) domain.PerformanceTier {
	if campaign == nil || campaign.Metrics == nil || campaign.Metrics.Clicks == 0 {
		return domain.TierLow
	}

	conversionRate := campaign.Metrics.ConversionRate()
	costPerConversion := campaign.Metrics.CostPerConversion()

	switch {
	case conversionRate > e.cfg.HighConversionRate && costPerConversion < e.cfg.LowCostPerConversion:
		return domain.TierHigh
	case conversionRate > e.cfg.MediumConversionRate && costPerConversion < e.cfg.HighCostPerConversion:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

// ClassifyCampaigns calcula o tier de cada campanha ativa
func (e *Engine) ClassifyCampaigns(campaigns []*domain.Campaign) map[string]domain.PerformanceTier {
	tiers := make(map[string]domain.PerformanceTier)
	for _, campaign := range campaigns {
		if !campaign.IsActive() {
			continue
		}
		tiers[campaign.ID] = e.PerformanceTier(campaign)
	}
	return tiers
}

// TopPerformingCampaigns seleciona, entre as campanhas ativas com cliques e
// custo, as 5 de maior taxa de conversão
func (e *Engine) TopPerformingCampaigns(campaigns []*domain.Campaign) []*domain.Campaign {
	candidates := make([]*domain.Campaign, 0)
	for _, campaign := range campaigns {
		if campaign.IsActive() && campaign.Metrics != nil && campaign.Metrics.Clicks > 0 && campaign.Metrics.Cost > 0 {
			candidates = append(candidates, campaign)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Metrics.ConversionRate() > candidates[j].Metrics.ConversionRate()
	})

	if len(candidates) > maxTopCampaigns {
		candidates = candidates[:maxTopCampaigns]
	}

	return candidates
}

// UnderperformingCampaigns seleciona as 5 campanhas mais caras que gastaram
// acima do piso sem converter
func (e *Engine) UnderperformingCampaigns(campaigns []*domain.Campaign) []*domain.Campaign {
	candidates := make([]*domain.Campaign, 0)
	for _, campaign := range campaigns {
		if campaign.Metrics != nil && campaign.Metrics.Cost > underperformingMinCost && campaign.Metrics.Conversions < underperformingMaxConversions {
			candidates = append(candidates, campaign)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Metrics.Cost > candidates[j].Metrics.Cost
	})

	if len(candidates) > maxTopCampaigns {
		candidates = candidates[:maxTopCampaigns]
	}

	return candidates
}

// BudgetRecommendations sugere ajustes de orçamento por campanha. Só
// campanhas com conversões entram na regra, e só recomendações cujo
// orçamento sugerido difere do atual são retornadas.
func (e *Engine) BudgetRecommendations(campaigns []*domain.Campaign) []*domain.BudgetRecommendation {
	recommendations := make([]*domain.BudgetRecommendation, 0)

	for _, campaign := range campaigns {
		if campaign.Metrics == nil || campaign.Metrics.Conversions <= 0 {
			continue
		}

		conversionRate := campaign.Metrics.ConversionRate()
		costPerConversion := campaign.Metrics.CostPerConversion()

		recommended := campaign.Budget
		reason := ""
		impact := ""

		if conversionRate > e.cfg.HighConversionRate && costPerConversion < e.cfg.LowCostPerConversion {
			recommended = utils.RoundWithTwoDecimalPlace(campaign.Budget * (1 + e.cfg.BudgetAdjustmentFactor))
			reason = "alta taxa de conversão com custo por conversão baixo"
			impact = fmt.Sprintf("potencial de até %.0f%% mais conversões com o mesmo desempenho", e.cfg.BudgetAdjustmentFactor*100)
		} else if conversionRate < e.cfg.LowConversionRate && costPerConversion > e.cfg.HighCostPerConversion {
			recommended = utils.RoundWithTwoDecimalPlace(campaign.Budget * (1 - e.cfg.BudgetAdjustmentFactor))
			reason = "taxa de conversão baixa com custo por conversão alto"
			impact = fmt.Sprintf("redução de ~%.0f%% no gasto com pouco impacto em conversões", e.cfg.BudgetAdjustmentFactor*100)
		}

		// Candidatas sem mudança de orçamento são filtradas
		if recommended == campaign.Budget {
			continue
		}

		recommendations = append(recommendations, &domain.BudgetRecommendation{
			CampaignID:        campaign.ID,
			CampaignName:      campaign.Name,
			CurrentBudget:     campaign.Budget,
			RecommendedBudget: recommended,
			Reason:            reason,
			PotentialImpact:   impact,
		})

		if len(recommendations) >= maxBudgetRecommendations {
			break
		}
	}

	return recommendations
}

// KeywordOpportunities sugere ações sobre palavras-chave com volume mínimo
// de cliques
func (e *Engine) KeywordOpportunities(keywords []*domain.Keyword) []*domain.KeywordOpportunity {
	opportunities := make([]*domain.KeywordOpportunity, 0)

	for _, keyword := range keywords {
		if keyword.Metrics == nil || keyword.Metrics.Clicks <= e.cfg.KeywordMinClicks {
			continue
		}

		conversionRate := keyword.Metrics.ConversionRate()
		cpc := keyword.Metrics.CPC

		opportunityType := domain.OpportunityBidIncrease
		action := ""

		if conversionRate > e.cfg.HighConversionRate && cpc < e.cfg.KeywordLowCPC {
			opportunityType = domain.OpportunityBidIncrease
			action = "aumente o lance para capturar mais volume desta palavra-chave"
		} else if conversionRate < e.cfg.LowConversionRate && cpc > e.cfg.KeywordHighCPC {
			opportunityType = domain.OpportunityBidDecrease
			action = "reduza o lance ou pause esta palavra-chave de custo alto"
		}
		// Fora das duas faixas a oportunidade fica com o tipo padrão e
		// sem ação recomendada

		opportunities = append(opportunities, &domain.KeywordOpportunity{
			KeywordText:        keyword.Text,
			MatchType:          keyword.MatchType,
			OpportunityType:    opportunityType,
			CurrentPerformance: keyword.Metrics,
			RecommendedAction:  action,
		})

		if len(opportunities) >= maxKeywordOpportunities {
			break
		}
	}

	return opportunities
}

// SpendDistribution calcula as fatias de gasto dos 20% superiores, 20%
// inferiores e 60% intermediários das campanhas ordenadas por custo
func (e *Engine) SpendDistribution(campaigns []*domain.Campaign) *domain.SpendDistribution {
	sorted := make([]*domain.Campaign, 0, len(campaigns))
	totalSpend := 0.0

	for _, campaign := range campaigns {
		if campaign.Metrics == nil {
			continue
		}
		sorted = append(sorted, campaign)
		totalSpend += campaign.Metrics.Cost
	}

	distribution := &domain.SpendDistribution{
		TotalSpend: utils.RoundWithTwoDecimalPlace(totalSpend),
	}

	if len(sorted) == 0 || totalSpend == 0 {
		return distribution
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metrics.Cost > sorted[j].Metrics.Cost
	})

	segment := len(sorted) / 5

	topSpend := 0.0
	for i := 0; i < segment; i++ {
		topSpend += sorted[i].Metrics.Cost
	}

	bottomSpend := 0.0
	for i := len(sorted) - segment; i < len(sorted); i++ {
		bottomSpend += sorted[i].Metrics.Cost
	}

	distribution.TopShare = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(topSpend, totalSpend))
	distribution.BottomShare = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(bottomSpend, totalSpend))
	distribution.MiddleShare = utils.RoundWithTwoDecimalPlace(1 - distribution.TopShare - distribution.BottomShare)

	return distribution
}
