package domain

// AccountAggregates são os totais da conta calculados sobre as campanhas
type AccountAggregates struct {
	TotalClicks      int64   `json:"total_clicks"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalCost        float64 `json:"total_cost"`
	TotalConversions float64 `json:"total_conversions"`
	AverageCTR       float64 `json:"average_ctr"`
	AverageCPC       float64 `json:"average_cpc"`
	ActiveCampaigns  int     `json:"active_campaigns"`
}

// ConsolidatedAccountData é a estrutura canônica entregue pelo serviço de
// consolidação. Datasets que falharem na busca chegam como coleções vazias,
// nunca como nil.
type ConsolidatedAccountData struct {
	Account    *Account           `json:"account"`
	Campaigns  []*Campaign        `json:"campaigns"`
	AdGroups   []*AdGroup         `json:"ad_groups"`
	Keywords   []*Keyword         `json:"keywords"`
	Aggregates *AccountAggregates `json:"aggregates"`
	Insights   *AccountInsights   `json:"insights"`
}
