package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

type ResponseKeywords struct {
	Keywords []adsdomain.Keyword `json:"keywords"`
	Paging   adsdomain.Paging    `json:"paging"`
}

func (c *GoogleAdsClient) GetKeywords(customerID string, filters *domain.InsightFilters) ([]adsdomain.Keyword, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/customers/%s/keywords", c.Cfg.GoogleAds.URL, customerID)

	body, err := c.doRequest(baseURL, filters)
	if err != nil {
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(baseURL, filters)
		}
		if err != nil {
			return nil, err
		}
	}

	var response ResponseKeywords
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de palavras-chave")
		return nil, err
	}

	return response.Keywords, nil
}
