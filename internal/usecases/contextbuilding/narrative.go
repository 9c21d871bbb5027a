package contextbuilding

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const lowCompletenessThreshold = 0.6

// buildNarrative converte o contexto estruturado em prosa curta. Os textos
// degradam de forma explícita quando faltam dados, em vez de omitir seções.
func buildNarrative(data *domain.AIContextData) *domain.ContextNarrative {
	return &domain.ContextNarrative{
		ExecutiveSummary:        executiveSummary(data),
		PerformanceNarrative:    performanceNarrative(data),
		InsightsNarrative:       insightsNarrative(data.InsightsSummary),
		RecommendationNarrative: recommendationNarrative(data.ActionableRecommendations),
		DataQualityNote:         dataQualityNote(data.ContextMetadata),
	}
}

func executiveSummary(data *domain.AIContextData) string {
	summary := data.AccountSummary

	if summary.CampaignCount == 0 {
		return fmt.Sprintf(
			"A conta %q não tem campanhas no período analisado.",
			summary.AccountName,
		)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder,
		"A conta %q tem %d campanhas, sendo %d ativas.",
		summary.AccountName, summary.CampaignCount, summary.ActiveCampaignCount,
	)

	if aggregates := data.PerformanceSnapshot.Aggregates; aggregates != nil {
		fmt.Fprintf(&builder,
			" No período, foram %d cliques e %.0f conversões com gasto de %.2f %s.",
			aggregates.TotalClicks, aggregates.TotalConversions, aggregates.TotalCost, summary.Currency,
		)
	}

	fmt.Fprintf(&builder, " Saúde geral da conta: %d de 100.", data.ContextMetadata.HealthScore)

	return builder.String()
}

func performanceNarrative(data *domain.AIContextData) string {
	snapshot := data.PerformanceSnapshot

	if len(snapshot.TopCampaigns) == 0 {
		return "Nenhuma campanha registrou cliques e gasto suficientes para ranquear desempenho."
	}

	var builder strings.Builder
	best := snapshot.TopCampaigns[0]
	fmt.Fprintf(&builder,
		"A campanha de melhor desempenho é %q, com taxa de conversão de %.1f%% (%.0f conversões, gasto de %.2f).",
		best.Name, best.ConversionRate*100, best.Conversions, best.Cost,
	)

	distribution := snapshot.TierDistribution
	fmt.Fprintf(&builder,
		" Distribuição por faixa: %d em alta, %d em média e %d em baixa performance.",
		distribution[domain.TierHigh], distribution[domain.TierMedium], distribution[domain.TierLow],
	)

	if spend := snapshot.SpendDistribution; spend != nil && spend.TotalSpend > 0 {
		fmt.Fprintf(&builder,
			" As campanhas mais caras concentram %.0f%% do gasto total.",
			spend.TopShare*100,
		)
	}

	return builder.String()
}

func insightsNarrative(summary *domain.InsightsSummary) string {
	var parts []string

	if len(summary.Opportunities) > 0 {
		parts = append(parts, "Oportunidades: "+strings.Join(summary.Opportunities, "; ")+".")
	} else {
		parts = append(parts, "Nenhuma oportunidade clara foi identificada no período.")
	}

	if len(summary.MainConcerns) > 0 {
		parts = append(parts, "Pontos de atenção: "+strings.Join(summary.MainConcerns, "; ")+".")
	} else {
		parts = append(parts, "Sem pontos de atenção relevantes.")
	}

	if trend := trendSentence(summary.Trends); trend != "" {
		parts = append(parts, trend)
	}

	return strings.Join(parts, " ")
}

func trendSentence(trends []*domain.PerformanceTrend) string {
	if len(trends) == 0 {
		return ""
	}

	if trends[0].Direction == domain.TrendUnavailable {
		return "Ainda não há histórico suficiente para calcular tendências."
	}

	var movements []string
	for _, trend := range trends {
		var verb string
		switch trend.Direction {
		case domain.TrendUp:
			verb = "subiu"
		case domain.TrendDown:
			verb = "caiu"
		default:
			verb = "ficou estável"
		}

		if trend.Direction == domain.TrendFlat {
			movements = append(movements, fmt.Sprintf("%s %s", trend.Metric, verb))
			continue
		}
		movements = append(movements, fmt.Sprintf("%s %s %.1f%%", trend.Metric, verb, trend.ChangePercent))
	}

	return fmt.Sprintf("Na comparação com a semana anterior: %s.", strings.Join(movements, ", "))
}

func recommendationNarrative(recommendations []*domain.Recommendation) string {
	if len(recommendations) == 0 {
		return "Nenhuma ação recomendada no momento; a conta segue dentro do esperado."
	}

	top := recommendations
	if len(top) > 3 {
		top = top[:3]
	}

	var lines []string
	for _, recommendation := range top {
		lines = append(lines, recommendation.Description)
	}

	return fmt.Sprintf("Principais ações sugeridas: %s.", strings.Join(lines, "; "))
}

func dataQualityNote(metadata *domain.ContextMetadata) string {
	var notes []string

	switch metadata.Freshness {
	case domain.FreshnessFresh:
		notes = append(notes, "Os dados foram sincronizados há menos de seis horas.")
	case domain.FreshnessStale:
		notes = append(notes, "Os dados têm mais de seis horas; números muito recentes podem não aparecer.")
	default:
		notes = append(notes, "Não há sincronização recente; os números podem estar desatualizados.")
	}

	if metadata.CompletenessScore < lowCompletenessThreshold {
		notes = append(notes, "Parte dos dados da conta não pôde ser carregada, então a análise pode estar incompleta.")
	}

	return strings.Join(notes, " ")
}
