package domain

import (
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

type EntityStatus string

const (
	EntityStatusEnabled EntityStatus = "ENABLED"
	EntityStatusPaused  EntityStatus = "PAUSED"
	EntityStatusRemoved EntityStatus = "REMOVED"
)

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdGroup  EntityType = "ad_group"
	EntityTypeKeyword  EntityType = "keyword"
)

// Metrics é o conjunto normalizado de métricas de performance de uma entidade.
// Cost está na unidade monetária principal, nunca em micro-unidades.
type Metrics struct {
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
}

// ConversionRate calcula conversões por clique, 0 quando não há cliques
func (m *Metrics) ConversionRate() float64 {
	if m == nil {
		return 0
	}
	return utils.SafeDivide(m.Conversions, float64(m.Clicks))
}

// CostPerConversion calcula o custo por conversão, 0 quando não há conversões
func (m *Metrics) CostPerConversion() float64 {
	if m == nil {
		return 0
	}
	return utils.SafeDivide(m.Cost, m.Conversions)
}

type Campaign struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Status  EntityStatus `json:"status"`
	Budget  float64      `json:"budget"`
	Metrics *Metrics     `json:"metrics"`
}

func (c *Campaign) IsActive() bool {
	return c != nil && c.Status == EntityStatusEnabled
}

type AdGroup struct {
	ID         string       `json:"id"`
	CampaignID string       `json:"campaign_id"`
	Name       string       `json:"name"`
	Status     EntityStatus `json:"status"`
	Metrics    *Metrics     `json:"metrics"`
}

type MatchType string

const (
	MatchTypeExact  MatchType = "EXACT"
	MatchTypePhrase MatchType = "PHRASE"
	MatchTypeBroad  MatchType = "BROAD"
)

type Keyword struct {
	ID        string       `json:"id"`
	AdGroupID string       `json:"ad_group_id"`
	Text      string       `json:"text"`
	MatchType MatchType    `json:"match_type"`
	Status    EntityStatus `json:"status"`
	Metrics   *Metrics     `json:"metrics"`
}
