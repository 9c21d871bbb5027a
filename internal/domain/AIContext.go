package domain

import (
	"time"
)

// DataFreshness classifica quão recente é o último sync da conta
type DataFreshness string

const (
	FreshnessFresh       DataFreshness = "fresh"
	FreshnessStale       DataFreshness = "stale"
	FreshnessUnavailable DataFreshness = "unavailable"
)

type AccountSummary struct {
	AccountID           string        `json:"account_id"`
	AccountName         string        `json:"account_name"`
	Currency            string        `json:"currency"`
	CampaignCount       int           `json:"campaign_count"`
	ActiveCampaignCount int           `json:"active_campaign_count"`
	ConnectionStatus    AccountStatus `json:"connection_status"`
	DataFreshness       DataFreshness `json:"data_freshness"`
}

// CampaignHighlight é a projeção enxuta de campanha usada no snapshot
type CampaignHighlight struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Tier           PerformanceTier `json:"tier"`
	Clicks         int64           `json:"clicks"`
	Cost           float64         `json:"cost"`
	Conversions    float64         `json:"conversions"`
	ConversionRate float64         `json:"conversion_rate"`
}

type PerformanceSnapshot struct {
	Aggregates        *AccountAggregates      `json:"aggregates"`
	TopCampaigns      []*CampaignHighlight    `json:"top_campaigns"`
	TierDistribution  map[PerformanceTier]int `json:"tier_distribution"`
	SpendDistribution *SpendDistribution      `json:"spend_distribution"`
}

type InsightsSummary struct {
	Opportunities []string            `json:"opportunities"`
	MainConcerns  []string            `json:"main_concerns"`
	Trends        []*PerformanceTrend `json:"trends"`
}

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation é uma ação sugerida, já ranqueada para exibição
type Recommendation struct {
	Type            string                 `json:"type"`
	Priority        RecommendationPriority `json:"priority"`
	ConfidenceScore float64                `json:"confidence_score"`
	Description     string                 `json:"description"`
	Impact          string                 `json:"impact"`
}

type ContextMetadata struct {
	HealthScore       int           `json:"health_score"`
	CompletenessScore float64       `json:"completeness_score"`
	Freshness         DataFreshness `json:"freshness"`
	GeneratedAt       time.Time     `json:"generated_at"`
}

// AIContextData é o objeto estruturado montado pelo construtor de contexto.
// É reconstruído a cada requisição e nunca alterado depois de montado.
type AIContextData struct {
	AccountSummary            *AccountSummary      `json:"account_summary"`
	PerformanceSnapshot       *PerformanceSnapshot `json:"performance_snapshot"`
	InsightsSummary           *InsightsSummary     `json:"insights_summary"`
	ActionableRecommendations []*Recommendation    `json:"actionable_recommendations"`
	ContextMetadata           *ContextMetadata     `json:"context_metadata"`
}

// ContextNarrative é o pacote em linguagem natural derivado dos números
type ContextNarrative struct {
	ExecutiveSummary        string `json:"executive_summary"`
	PerformanceNarrative    string `json:"performance_narrative"`
	InsightsNarrative       string `json:"insights_narrative"`
	RecommendationNarrative string `json:"recommendation_narrative"`
	DataQualityNote         string `json:"data_quality_note"`
}

// AIContextBundle é o pacote completo entregue à camada de conversação
type AIContextBundle struct {
	StructuredData    *AIContextData           `json:"structured_data"`
	NaturalLanguage   *ContextNarrative        `json:"natural_language"`
	QuerySpecificData *RelevantContext         `json:"query_specific_data,omitempty"`
	Consolidated      *ConsolidatedAccountData `json:"-"`
}
