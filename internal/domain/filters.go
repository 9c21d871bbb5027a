package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

type DateRange string

const (
	DateRangeLast7Days  DateRange = "LAST_7_DAYS"
	DateRangeLast30Days DateRange = "LAST_30_DAYS"
	DateRangeThisMonth  DateRange = "THIS_MONTH"
	DateRangeCustom     DateRange = "CUSTOM"
)

// DatasetType identifica qual coleção de entidades uma busca cobre
type DatasetType string

const (
	DatasetCampaigns DatasetType = "campaigns"
	DatasetAdGroups  DatasetType = "ad_groups"
	DatasetKeywords  DatasetType = "keywords"
)

// InsightFilters restringe as buscas na plataforma de anúncios
type InsightFilters struct {
	DateRange      DateRange  `json:"date_range"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Metrics        []string   `json:"metrics,omitempty"`
	CampaignStatus []string   `json:"campaign_status,omitempty"`
	Limit          int        `json:"limit,omitempty"`
}

// rangeSelector representa o período de forma estável para a chave de cache
func (f *InsightFilters) rangeSelector() string {
	if f.DateRange == DateRangeCustom && f.StartDate != nil && f.EndDate != nil {
		return fmt.Sprintf("%s_%s", f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly))
	}
	if f.DateRange == "" {
		return string(DateRangeLast30Days)
	}
	return string(f.DateRange)
}

// CacheKey deriva a chave determinística de cache para um dataset.
// Tipo do dataset, período e a lista ordenada de métricas entram na chave,
// então combinações distintas de filtros nunca colidem.
func (f *InsightFilters) CacheKey(dataset DatasetType) string {
	metrics := make([]string, len(f.Metrics))
	copy(metrics, f.Metrics)
	sort.Strings(metrics)

	return fmt.Sprintf("%s:%s:%s", dataset, f.rangeSelector(), strings.Join(metrics, ","))
}

// QueryHash gera o hash de auditoria da requisição completa, incluindo a conta
func (f *InsightFilters) QueryHash(accountID string, dataset DatasetType) string {
	return utils.HashContent(map[string]any{
		"account_id": accountID,
		"dataset":    dataset,
		"filters":    f,
	})
}
