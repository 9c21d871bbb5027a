package consolidating

import (
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

// AdsDataClient define a interface da plataforma de anúncios consumida pela
// consolidação. Implementada pelo integrador do Google Ads.
type AdsDataClient interface {
	GetCampaigns(customerID string, filters *domain.InsightFilters) ([]adsdomain.Campaign, error)
	GetAdGroups(customerID string, filters *domain.InsightFilters) ([]adsdomain.AdGroup, error)
	GetKeywords(customerID string, filters *domain.InsightFilters) ([]adsdomain.Keyword, error)
}

// Consolidator é a interface exposta para os construtores de contexto
type Consolidator interface {
	// GetConsolidatedAccountData busca os três datasets em paralelo,
	// normaliza as métricas e devolve a estrutura canônica completa.
	// Falhas parciais degradam o dataset correspondente para coleção
	// vazia em vez de abortar a operação.
	GetConsolidatedAccountData(accountID string, filters *domain.InsightFilters) (*domain.ConsolidatedAccountData, error)
}
