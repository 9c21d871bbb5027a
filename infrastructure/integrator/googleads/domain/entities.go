package adsdomain

// RawMetrics é o bloco de métricas como chega da plataforma de anúncios.
// Custos vêm em micro-unidades da moeda da conta; as razões (ctr, cpc)
// podem vir ausentes e são recalculadas na consolidação.
type RawMetrics struct {
	Clicks      int64    `json:"clicks"`
	Impressions int64    `json:"impressions"`
	CostMicros  int64    `json:"cost_micros"`
	Conversions float64  `json:"conversions"`
	CTR         *float64 `json:"ctr,omitempty"`
	CPCMicros   *int64   `json:"average_cpc_micros,omitempty"`
}

type Campaign struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	BudgetMicros int64      `json:"budget_micros"`
	Metrics      RawMetrics `json:"metrics"`
}

type AdGroup struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign_id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Metrics    RawMetrics `json:"metrics"`
}

type Keyword struct {
	ID        string     `json:"id"`
	AdGroupID string     `json:"ad_group_id"`
	Text      string     `json:"text"`
	MatchType string     `json:"match_type"`
	Status    string     `json:"status"`
	Metrics   RawMetrics `json:"metrics"`
}

type Paging struct {
	NextPageToken string `json:"next_page_token"`
}
