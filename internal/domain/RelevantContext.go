package domain

// FocusType identifica qual recorte do contexto uma consulta pede
type FocusType string

const (
	FocusKeywords  FocusType = "keywords"
	FocusAdGroups  FocusType = "ad_groups"
	FocusCampaigns FocusType = "campaigns"
	FocusDevices   FocusType = "devices"
	FocusSummary   FocusType = "summary"
)

// Projeções enxutas para limitar o tamanho do prompt do LLM

type CampaignProjection struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
}

type AdGroupProjection struct {
	Name        string  `json:"name"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
}

type KeywordProjection struct {
	Text        string  `json:"text"`
	MatchType   string  `json:"match_type"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	CPC         float64 `json:"cpc"`
}

type SummaryProjection struct {
	Narrative   string               `json:"narrative"`
	TopKeywords []*KeywordProjection `json:"top_keywords,omitempty"`
}

// RelevantContext é o subconjunto compacto e ranqueado do contexto,
// construído a cada consulta do usuário e nunca persistido
type RelevantContext struct {
	Focus         []FocusType           `json:"focus"`
	RankingMetric string                `json:"ranking_metric"`
	TopN          int                   `json:"top_n"`
	Campaigns     []*CampaignProjection `json:"campaigns,omitempty"`
	AdGroups      []*AdGroupProjection  `json:"ad_groups,omitempty"`
	Keywords      []*KeywordProjection  `json:"keywords,omitempty"`
	Summary       *SummaryProjection    `json:"summary,omitempty"`
}
