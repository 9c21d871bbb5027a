package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

type ResponseCampaigns struct {
	Campaigns []adsdomain.Campaign `json:"campaigns"`
	Paging    adsdomain.Paging     `json:"paging"`
}

func (c *GoogleAdsClient) GetCampaigns(customerID string, filters *domain.InsightFilters) ([]adsdomain.Campaign, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/customers/%s/campaigns", c.Cfg.GoogleAds.URL, customerID)

	body, err := c.doRequest(baseURL, filters)
	if err != nil {
		// Se a credencial foi renovada, repetir a requisição uma única vez
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(baseURL, filters)
		}
		if err != nil {
			return nil, err
		}
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de campanhas")
		return nil, err
	}

	return response.Campaigns, nil
}

// doRequest monta os parâmetros de filtro e executa a chamada HTTP
func (c *GoogleAdsClient) doRequest(baseURL string, filters *domain.InsightFilters) ([]byte, error) {
	params := url.Values{}

	if filters != nil {
		if filters.DateRange == domain.DateRangeCustom && filters.StartDate != nil && filters.EndDate != nil {
			params.Add("time_range", fmt.Sprintf(
				"{\"since\":\"%s\",\"until\":\"%s\"}",
				filters.StartDate.Format(time.DateOnly),
				filters.EndDate.Format(time.DateOnly),
			))
		} else if filters.DateRange != "" {
			params.Add("date_range", string(filters.DateRange))
		}

		if len(filters.Metrics) > 0 {
			params.Add("fields", strings.Join(filters.Metrics, ","))
		}

		if len(filters.CampaignStatus) > 0 {
			params.Add("status", strings.Join(filters.CampaignStatus, ","))
		}

		if filters.Limit > 0 {
			params.Add("limit", strconv.Itoa(filters.Limit))
		}
	}

	requestURL := baseURL
	if encoded := params.Encode(); encoded != "" {
		requestURL = baseURL + "?" + encoded
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.TokenManager.AccessToken())
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}
