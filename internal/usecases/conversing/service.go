package conversing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/contextbuilding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyMessage indica que a mensagem do usuário veio vazia
var ErrEmptyMessage = errors.New("a mensagem do usuário é obrigatória")

const systemPrompt = `Você é um assistente de tráfego pago que analisa contas de anúncios.
Responda em português, de forma direta e baseada apenas nos dados fornecidos no contexto.
Quando os dados estiverem incompletos ou desatualizados, diga isso explicitamente.
Nunca invente números que não estejam no contexto.`

// Conversation responde perguntas do usuário sobre a conta via LLM
type Conversation interface {
	Chat(ctx context.Context, accountID string, request *domain.ChatRequest) (<-chan openai.StreamChunk, error)
}

type Service struct {
	contextBuilder contextbuilding.ContextBuilder
	provider       openai.Provider
}

func NewService(contextBuilder contextbuilding.ContextBuilder, provider openai.Provider) Conversation {
	return &Service{
		contextBuilder: contextBuilder,
		provider:       provider,
	}
}

// Chat monta o contexto da conta, recorta o que a pergunta pede e inicia o
// stream de resposta. O cancelamento do contexto interrompe o stream.
func (s *Service) Chat(ctx context.Context, accountID string, request *domain.ChatRequest) (<-chan openai.StreamChunk, error) {
	if request == nil || strings.TrimSpace(request.Message) == "" {
		return nil, ErrEmptyMessage
	}

	bundle, err := s.contextBuilder.PrepareAIContext(accountID, request.Filters, request.Message)
	if err != nil {
		return nil, err
	}

	userPrompt, err := buildUserPrompt(bundle, request.Message)
	if err != nil {
		return nil, err
	}

	messages := []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"focus":      focusLabels(bundle.QuerySpecificData),
	}).Info("Iniciando conversa com o LLM")

	return s.provider.StreamChat(ctx, messages)
}

// buildUserPrompt anexa à pergunta o narrativo e o recorte estruturado
// relevante, mantendo o prompt limitado ao que a consulta pede
func buildUserPrompt(bundle *domain.AIContextBundle, message string) (string, error) {
	var builder strings.Builder

	builder.WriteString("Resumo da conta:\n")
	if narrative := bundle.NaturalLanguage; narrative != nil {
		builder.WriteString(narrative.ExecutiveSummary)
		builder.WriteString("\n")
		builder.WriteString(narrative.InsightsNarrative)
		builder.WriteString("\n")
		builder.WriteString(narrative.DataQualityNote)
		builder.WriteString("\n")
	}

	if bundle.QuerySpecificData != nil {
		payload, err := json.Marshal(bundle.QuerySpecificData)
		if err != nil {
			return "", fmt.Errorf("erro ao serializar o recorte relevante: %w", err)
		}
		builder.WriteString("\nDados relevantes para a pergunta (JSON):\n")
		builder.Write(payload)
		builder.WriteString("\n")
	}

	builder.WriteString("\nPergunta do usuário: ")
	builder.WriteString(message)

	return builder.String(), nil
}

func focusLabels(relevant *domain.RelevantContext) []string {
	if relevant == nil {
		return nil
	}

	labels := make([]string, 0, len(relevant.Focus))
	for _, focus := range relevant.Focus {
		labels = append(labels, string(focus))
	}

	return labels
}
