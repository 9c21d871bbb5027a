package googleads

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

// AdsIntegrator expõe as buscas de entidades brutas da plataforma de anúncios
type AdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *AdsIntegrator {
	return &AdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdsIntegrator) GetCampaigns(customerID string, filters *domain.InsightFilters) ([]adsdomain.Campaign, error) {
	campaigns, err := s.Client.GetCampaigns(customerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get campaigns from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaigns":   len(campaigns),
	}).Debug("ads: successfully retrieved campaigns")

	return campaigns, nil
}

func (s *AdsIntegrator) GetAdGroups(customerID string, filters *domain.InsightFilters) ([]adsdomain.AdGroup, error) {
	adGroups, err := s.Client.GetAdGroups(customerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get ad groups from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"ad_groups":   len(adGroups),
	}).Debug("ads: successfully retrieved ad groups")

	return adGroups, nil
}

func (s *AdsIntegrator) GetKeywords(customerID string, filters *domain.InsightFilters) ([]adsdomain.Keyword, error) {
	keywords, err := s.Client.GetKeywords(customerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("ads: failed to get keywords from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"keywords":    len(keywords),
	}).Debug("ads: successfully retrieved keywords")

	return keywords, nil
}
