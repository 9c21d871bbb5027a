package domain

// PerformanceTier classifica campanhas por taxa de conversão e custo por conversão
type PerformanceTier string

const (
	TierHigh   PerformanceTier = "high"
	TierMedium PerformanceTier = "medium"
	TierLow    PerformanceTier = "low"
)

type OpportunityType string

const (
	OpportunityBidIncrease OpportunityType = "bid_increase"
	OpportunityBidDecrease OpportunityType = "bid_decrease"
	OpportunityAddNegative OpportunityType = "add_negative"
	OpportunityExpandMatch OpportunityType = "expand_match"
)

// BudgetRecommendation sugere um ajuste de orçamento para uma campanha.
// Só é emitida quando o orçamento recomendado difere do atual.
type BudgetRecommendation struct {
	CampaignID        string  `json:"campaign_id"`
	CampaignName      string  `json:"campaign_name"`
	CurrentBudget     float64 `json:"current_budget"`
	RecommendedBudget float64 `json:"recommended_budget"`
	Reason            string  `json:"reason"`
	PotentialImpact   string  `json:"potential_impact"`
}

// KeywordOpportunity sugere uma ação sobre uma palavra-chave
type KeywordOpportunity struct {
	KeywordText        string          `json:"keyword_text"`
	MatchType          MatchType       `json:"match_type"`
	OpportunityType    OpportunityType `json:"opportunity_type"`
	CurrentPerformance *Metrics        `json:"current_performance"`
	RecommendedAction  string          `json:"recommended_action"`
}

type TrendDirection string

const (
	TrendUp          TrendDirection = "up"
	TrendDown        TrendDirection = "down"
	TrendFlat        TrendDirection = "flat"
	TrendUnavailable TrendDirection = "unavailable"
)

// PerformanceTrend compara uma métrica entre a janela atual e a anterior
type PerformanceTrend struct {
	Metric        string         `json:"metric"`
	Window        string         `json:"window"`
	Direction     TrendDirection `json:"direction"`
	ChangePercent float64        `json:"change_percent"`
	Significance  string         `json:"significance"`
}

// SpendDistribution expressa como o gasto se divide entre as campanhas mais
// caras (20% superiores), as mais baratas (20% inferiores) e o meio
type SpendDistribution struct {
	TopShare    float64 `json:"top_share"`
	MiddleShare float64 `json:"middle_share"`
	BottomShare float64 `json:"bottom_share"`
	TotalSpend  float64 `json:"total_spend"`
}

// AccountInsights é a saída completa do motor de insights
type AccountInsights struct {
	CampaignTiers            map[string]PerformanceTier `json:"campaign_tiers"`
	TopPerformingCampaigns   []*Campaign                `json:"top_performing_campaigns"`
	UnderperformingCampaigns []*Campaign                `json:"underperforming_campaigns"`
	BudgetRecommendations    []*BudgetRecommendation    `json:"budget_recommendations"`
	KeywordOpportunities     []*KeywordOpportunity      `json:"keyword_opportunities"`
	PerformanceTrends        []*PerformanceTrend        `json:"performance_trends"`
	SpendDistribution        *SpendDistribution         `json:"spend_distribution"`
}
