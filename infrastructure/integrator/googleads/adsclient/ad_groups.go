package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

type ResponseAdGroups struct {
	AdGroups []adsdomain.AdGroup `json:"ad_groups"`
	Paging   adsdomain.Paging    `json:"paging"`
}

func (c *GoogleAdsClient) GetAdGroups(customerID string, filters *domain.InsightFilters) ([]adsdomain.AdGroup, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/customers/%s/adGroups", c.Cfg.GoogleAds.URL, customerID)

	body, err := c.doRequest(baseURL, filters)
	if err != nil {
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(baseURL, filters)
		}
		if err != nil {
			return nil, err
		}
	}

	var response ResponseAdGroups
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de grupos de anúncios")
		return nil, err
	}

	return response.AdGroups, nil
}
