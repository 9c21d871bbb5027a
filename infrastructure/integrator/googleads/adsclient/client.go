package adsclient

import (
	"net/http"

	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

type Client interface {
	GetCampaigns(customerID string, filters *domain.InsightFilters) ([]adsdomain.Campaign, error)
	GetAdGroups(customerID string, filters *domain.InsightFilters) ([]adsdomain.AdGroup, error)
	GetKeywords(customerID string, filters *domain.InsightFilters) ([]adsdomain.Keyword, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
}

// RefreshToken troca o refresh token por um novo token de acesso
func (c *GoogleAdsClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *GoogleAdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de credencial expirada
func (c *GoogleAdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
