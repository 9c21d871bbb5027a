package consolidating

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-assistant-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-assistant-api/infrastructure/repository"
	"github.com/vfg2006/ads-assistant-api/internal/config"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/account"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-assistant-api/pkg/utils"
)

// Service consolida os dados brutos da plataforma de anúncios no modelo
// canônico, com cache de leitura e escrita por dataset
type Service struct {
	cfg            *config.Config
	adsService     AdsDataClient
	cacheRepo      repository.MetricsCacheRepository
	accountService account.AccountService
	engine         *insighting.Engine
	trendAnalyzer  *insighting.TrendAnalyzer
}

func NewService(
	cfg *config.Config,
	adsService AdsDataClient,
	cacheRepo repository.MetricsCacheRepository,
	accountService account.AccountService,
	engine *insighting.Engine,
	trendAnalyzer *insighting.TrendAnalyzer,
) Consolidator {
	return &Service{
		cfg:            cfg,
		adsService:     adsService,
		cacheRepo:      cacheRepo,
		accountService: accountService,
		engine:         engine,
		trendAnalyzer:  trendAnalyzer,
	}
}

func (s *Service) GetConsolidatedAccountData(accountID string, filters *domain.InsightFilters) (*domain.ConsolidatedAccountData, error) {
	acc, err := s.accountService.GetAuthorizedAccount(accountID)
	if err != nil {
		return nil, err
	}

	if filters == nil {
		filters = &domain.InsightFilters{DateRange: domain.DateRangeLast30Days}
	}

	var (
		campaigns []*domain.Campaign
		adGroups  []*domain.AdGroup
		keywords  []*domain.Keyword
	)

	// As três buscas são independentes: a falha de uma não derruba as
	// outras, e o chamador sempre recebe a estrutura completa
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		campaigns = s.fetchCampaigns(acc, filters)
	}()

	go func() {
		defer wg.Done()
		adGroups = s.fetchAdGroups(acc, filters)
	}()

	go func() {
		defer wg.Done()
		keywords = s.fetchKeywords(acc, filters)
	}()

	wg.Wait()

	insights := s.engine.GenerateInsights(campaigns, adGroups, keywords)
	if s.trendAnalyzer != nil {
		insights.PerformanceTrends = s.trendAnalyzer.ComputeTrends(acc.ID)
	}

	return &domain.ConsolidatedAccountData{
		Account:    acc,
		Campaigns:  campaigns,
		AdGroups:   adGroups,
		Keywords:   keywords,
		Aggregates: computeAggregates(campaigns),
		Insights:   insights,
	}, nil
}

func (s *Service) fetchCampaigns(acc *domain.Account, filters *domain.InsightFilters) []*domain.Campaign {
	campaigns := make([]*domain.Campaign, 0)

	hit := s.readCache(acc.ID, filters, domain.DatasetCampaigns, &campaigns)
	if hit {
		return campaigns
	}

	raw, err := s.adsService.GetCampaigns(acc.CustomerID, filters)
	if err != nil {
		// Falha parcial: o dataset degrada para coleção vazia
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"dataset":    domain.DatasetCampaigns,
			"error":      err.Error(),
		}).Warn("Falha ao buscar dataset; seguindo com coleção vazia")
		return campaigns
	}

	for _, rawCampaign := range raw {
		campaigns = append(campaigns, normalizeCampaign(rawCampaign))
	}

	s.writeCache(acc.ID, filters, domain.DatasetCampaigns, campaigns)
	return campaigns
}

func (s *Service) fetchAdGroups(acc *domain.Account, filters *domain.InsightFilters) []*domain.AdGroup {
	adGroups := make([]*domain.AdGroup, 0)

	hit := s.readCache(acc.ID, filters, domain.DatasetAdGroups, &adGroups)
	if hit {
		return adGroups
	}

	raw, err := s.adsService.GetAdGroups(acc.CustomerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"dataset":    domain.DatasetAdGroups,
			"error":      err.Error(),
		}).Warn("Falha ao buscar dataset; seguindo com coleção vazia")
		return adGroups
	}

	for _, rawAdGroup := range raw {
		adGroups = append(adGroups, normalizeAdGroup(rawAdGroup))
	}

	s.writeCache(acc.ID, filters, domain.DatasetAdGroups, adGroups)
	return adGroups
}

func (s *Service) fetchKeywords(acc *domain.Account, filters *domain.InsightFilters) []*domain.Keyword {
	keywords := make([]*domain.Keyword, 0)

	hit := s.readCache(acc.ID, filters, domain.DatasetKeywords, &keywords)
	if hit {
		return keywords
	}

	raw, err := s.adsService.GetKeywords(acc.CustomerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"dataset":    domain.DatasetKeywords,
			"error":      err.Error(),
		}).Warn("Falha ao buscar dataset; seguindo com coleção vazia")
		return keywords
	}

	for _, rawKeyword := range raw {
		keywords = append(keywords, normalizeKeyword(rawKeyword))
	}

	s.writeCache(acc.ID, filters, domain.DatasetKeywords, keywords)
	return keywords
}

// readCache tenta preencher out com uma entrada válida do cache; retorna
// true apenas em caso de hit
func (s *Service) readCache(accountID string, filters *domain.InsightFilters, dataset domain.DatasetType, out any) bool {
	cacheKey := filters.CacheKey(dataset)

	entry, err := s.cacheRepo.Get(accountID, cacheKey)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"cache_key":  cacheKey,
			"error":      err.Error(),
		}).Warn("Erro ao consultar cache de métricas")
		return false
	}

	// Entrada vencida nunca conta como hit, mesmo que o repositório a devolva
	if entry == nil || entry.IsExpired(time.Now()) {
		return false
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"cache_key":  cacheKey,
			"error":      err.Error(),
		}).Warn("Entrada de cache corrompida; tratando como miss")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"cache_key":  cacheKey,
	}).Debug("Cache hit para dataset")

	return true
}

// writeCache grava o payload normalizado após uma busca bem-sucedida.
// Erros de escrita são apenas logados; o cache nunca é fonte de verdade.
func (s *Service) writeCache(accountID string, filters *domain.InsightFilters, dataset domain.DatasetType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"dataset":    dataset,
			"error":      err.Error(),
		}).Warn("Erro ao serializar payload para o cache")
		return
	}

	cacheKey := filters.CacheKey(dataset)
	queryHash := filters.QueryHash(accountID, dataset)

	if err := s.cacheRepo.Set(accountID, cacheKey, data, queryHash, s.cfg.Insights.CacheTTLHours); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"cache_key":  cacheKey,
			"error":      err.Error(),
		}).Warn("Erro ao gravar no cache de métricas")
	}
}

// normalizeMetrics converte métricas brutas para o modelo canônico:
// custos saem de micro-unidades para a unidade principal e as razões são
// recalculadas quando ausentes, com divisão por zero protegida
func normalizeMetrics(raw adsdomain.RawMetrics) *domain.Metrics {
	metrics := &domain.Metrics{
		Clicks:      raw.Clicks,
		Impressions: raw.Impressions,
		Cost:        utils.MicrosToUnit(raw.CostMicros),
		Conversions: raw.Conversions,
	}

	if raw.CTR != nil {
		metrics.CTR = *raw.CTR
	} else {
		metrics.CTR = utils.SafeDivide(float64(raw.Clicks), float64(raw.Impressions))
	}

	if raw.CPCMicros != nil {
		metrics.CPC = utils.MicrosToUnit(*raw.CPCMicros)
	} else {
		metrics.CPC = utils.SafeDivide(metrics.Cost, float64(raw.Clicks))
	}

	return metrics
}

func normalizeCampaign(raw adsdomain.Campaign) *domain.Campaign {
	return &domain.Campaign{
		ID:      raw.ID,
		Name:    raw.Name,
		Status:  domain.EntityStatus(raw.Status),
		Budget:  utils.MicrosToUnit(raw.BudgetMicros),
		Metrics: normalizeMetrics(raw.Metrics),
	}
}

func normalizeAdGroup(raw adsdomain.AdGroup) *domain.AdGroup {
	return &domain.AdGroup{
		ID:         raw.ID,
		CampaignID: raw.CampaignID,
		Name:       raw.Name,
		Status:     domain.EntityStatus(raw.Status),
		Metrics:    normalizeMetrics(raw.Metrics),
	}
}

func normalizeKeyword(raw adsdomain.Keyword) *domain.Keyword {
	return &domain.Keyword{
		ID:        raw.ID,
		AdGroupID: raw.AdGroupID,
		Text:      raw.Text,
		MatchType: domain.MatchType(raw.MatchType),
		Status:    domain.EntityStatus(raw.Status),
		Metrics:   normalizeMetrics(raw.Metrics),
	}
}

// computeAggregates calcula os totais da conta sobre as campanhas
func computeAggregates(campaigns []*domain.Campaign) *domain.AccountAggregates {
	aggregates := &domain.AccountAggregates{}

	for _, campaign := range campaigns {
		if campaign.IsActive() {
			aggregates.ActiveCampaigns++
		}

		if campaign.Metrics == nil {
			continue
		}

		aggregates.TotalClicks += campaign.Metrics.Clicks
		aggregates.TotalImpressions += campaign.Metrics.Impressions
		aggregates.TotalCost += campaign.Metrics.Cost
		aggregates.TotalConversions += campaign.Metrics.Conversions
	}

	aggregates.TotalCost = utils.RoundWithTwoDecimalPlace(aggregates.TotalCost)
	aggregates.AverageCTR = utils.SafeDivide(float64(aggregates.TotalClicks), float64(aggregates.TotalImpressions))
	aggregates.AverageCPC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(aggregates.TotalCost, float64(aggregates.TotalClicks)))

	return aggregates
}
