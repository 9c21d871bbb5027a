package relevance

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const (
	topN                = 25
	summaryKeywordCount = 10
)

// intentRule associa um padrão da consulta a um recorte do contexto. As
// regras são avaliadas em ordem e mais de uma pode casar ao mesmo tempo.
type intentRule struct {
	pattern *regexp.Regexp
	focus   domain.FocusType
}

var intentRules = []intentRule{
	{regexp.MustCompile(`keyword|palavra|termo de pesquisa|search term`), domain.FocusKeywords},
	{regexp.MustCompile(`ad ?group|grupo de an[uú]ncio`), domain.FocusAdGroups},
	{regexp.MustCompile(`campaign|campanha`), domain.FocusCampaigns},
	{regexp.MustCompile(`device|dispositivo|mobile|desktop|tablet|celular`), domain.FocusDevices},
}

// metricRule escolhe a métrica de ranqueamento por ordem de prioridade:
// conversões > ctr > custo > cliques (padrão)
type metricRule struct {
	pattern *regexp.Regexp
	metric  string
}

var metricRules = []metricRule{
	{regexp.MustCompile(`conver|venda|lead|sale`), "conversions"},
	{regexp.MustCompile(`ctr|taxa de clique|click.?through`), "ctr"},
	{regexp.MustCompile(`cost|custo|gasto|spend|budget|or[cç]amento|verba`), "cost"},
}

// Selector recorta do pacote de contexto apenas o que a consulta do usuário
// pede, ranqueado e truncado para caber no prompt do LLM
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) SelectRelevantContext(query string, bundle *domain.AIContextBundle) *domain.RelevantContext {
	normalized := strings.ToLower(query)

	focuses := detectFocuses(normalized)
	metric := detectMetric(normalized)

	result := &domain.RelevantContext{
		Focus:         focuses,
		RankingMetric: metric,
		TopN:          topN,
	}

	if len(focuses) == 0 {
		// Nenhum recorte identificado: devolve o resumo executivo com as
		// palavras-chave de maior volume, nunca um payload vazio
		result.Focus = []domain.FocusType{domain.FocusSummary}
		result.Summary = buildSummaryProjection(bundle)
		return result
	}

	for _, focus := range focuses {
		switch focus {
		case domain.FocusKeywords:
			result.Keywords = projectKeywords(bundle.Consolidated.Keywords, metric)
		case domain.FocusAdGroups:
			result.AdGroups = projectAdGroups(bundle.Consolidated.AdGroups, metric)
		case domain.FocusCampaigns, domain.FocusDevices:
			// Não há segmentação por dispositivo nos dados normalizados;
			// o recorte de dispositivos devolve as campanhas ranqueadas
			if result.Campaigns == nil {
				result.Campaigns = projectCampaigns(bundle.Consolidated.Campaigns, metric)
			}
		}
	}

	return result
}

func detectFocuses(query string) []domain.FocusType {
	focuses := make([]domain.FocusType, 0)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(query) {
			focuses = append(focuses, rule.focus)
		}
	}

	return focuses
}

func detectMetric(query string) string {
	for _, rule := range metricRules {
		if rule.pattern.MatchString(query) {
			return rule.metric
		}
	}

	return "clicks"
}

// metricValue lê a métrica escolhida tolerando métricas ausentes (zero)
func metricValue(metrics *domain.Metrics, metric string) float64 {
	if metrics == nil {
		return 0
	}

	switch metric {
	case "conversions":
		return metrics.Conversions
	case "ctr":
		return metrics.CTR
	case "cost":
		return metrics.Cost
	default:
		return float64(metrics.Clicks)
	}
}

func projectCampaigns(campaigns []*domain.Campaign, metric string) []*domain.CampaignProjection {
	sorted := make([]*domain.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(sorted[i].Metrics, metric) > metricValue(sorted[j].Metrics, metric)
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	projections := make([]*domain.CampaignProjection, 0, len(sorted))
	for _, campaign := range sorted {
		projection := &domain.CampaignProjection{
			Name:   campaign.Name,
			Status: string(campaign.Status),
		}
		if campaign.Metrics != nil {
			projection.Clicks = campaign.Metrics.Clicks
			projection.Cost = campaign.Metrics.Cost
			projection.Conversions = campaign.Metrics.Conversions
			projection.CTR = campaign.Metrics.CTR
		}
		projections = append(projections, projection)
	}

	return projections
}

func projectAdGroups(adGroups []*domain.AdGroup, metric string) []*domain.AdGroupProjection {
	sorted := make([]*domain.AdGroup, len(adGroups))
	copy(sorted, adGroups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(sorted[i].Metrics, metric) > metricValue(sorted[j].Metrics, metric)
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	projections := make([]*domain.AdGroupProjection, 0, len(sorted))
	for _, adGroup := range sorted {
		projection := &domain.AdGroupProjection{Name: adGroup.Name}
		if adGroup.Metrics != nil {
			projection.Clicks = adGroup.Metrics.Clicks
			projection.Cost = adGroup.Metrics.Cost
			projection.Conversions = adGroup.Metrics.Conversions
		}
		projections = append(projections, projection)
	}

	return projections
}

func projectKeywords(keywords []*domain.Keyword, metric string) []*domain.KeywordProjection {
	sorted := make([]*domain.Keyword, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(sorted[i].Metrics, metric) > metricValue(sorted[j].Metrics, metric)
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	return keywordProjections(sorted)
}

func keywordProjections(keywords []*domain.Keyword) []*domain.KeywordProjection {
	projections := make([]*domain.KeywordProjection, 0, len(keywords))
	for _, keyword := range keywords {
		projection := &domain.KeywordProjection{
			Text:      keyword.Text,
			MatchType: string(keyword.MatchType),
		}
		if keyword.Metrics != nil {
			projection.Clicks = keyword.Metrics.Clicks
			projection.Cost = keyword.Metrics.Cost
			projection.Conversions = keyword.Metrics.Conversions
			projection.CPC = keyword.Metrics.CPC
		}
		projections = append(projections, projection)
	}

	return projections
}

func buildSummaryProjection(bundle *domain.AIContextBundle) *domain.SummaryProjection {
	summary := &domain.SummaryProjection{}

	if bundle.NaturalLanguage != nil {
		summary.Narrative = bundle.NaturalLanguage.ExecutiveSummary
	}

	if bundle.Consolidated == nil || len(bundle.Consolidated.Keywords) == 0 {
		return summary
	}

	sorted := make([]*domain.Keyword, len(bundle.Consolidated.Keywords))
	copy(sorted, bundle.Consolidated.Keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(sorted[i].Metrics, "clicks") > metricValue(sorted[j].Metrics, "clicks")
	})

	if len(sorted) > summaryKeywordCount {
		sorted = sorted[:summaryKeywordCount]
	}
	summary.TopKeywords = keywordProjections(sorted)

	return summary
}
