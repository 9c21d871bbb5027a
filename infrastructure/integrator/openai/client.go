package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/internal/config"
)

// Message é uma mensagem de chat enviada ao provedor
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamChunk é um pedaço da resposta em streaming
type StreamChunk struct {
	Content string
	Done    bool
	Error   error
}

// Provider define a interface do provedor de LLM
type Provider interface {
	StreamChat(ctx context.Context, messages []Message) (<-chan StreamChunk, error)
}

type OpenAIProvider struct {
	client *goopenai.Client
	cfg    config.OpenAI
}

func NewProvider(cfg *config.Config) Provider {
	return &OpenAIProvider{
		client: goopenai.NewClient(cfg.OpenAI.APIKey),
		cfg:    cfg.OpenAI,
	}
}

// StreamChat envia as mensagens e devolve um canal com os tokens da resposta.
// O cancelamento do contexto interrompe o repasse de tokens e libera a
// conexão com o provedor.
func (p *OpenAIProvider) StreamChat(ctx context.Context, messages []Message) (<-chan StreamChunk, error) {
	chunks := make(chan StreamChunk)

	openaiMessages := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		openaiMessages = append(openaiMessages, goopenai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	req := goopenai.ChatCompletionRequest{
		Model:       p.cfg.Model,
		Messages:    openaiMessages,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: float32(p.cfg.Temperature),
		Stream:      true,
	}

	go func() {
		defer close(chunks)

		// Todos os envios precisam respeitar o cancelamento: se o consumidor
		// abandonar o canal, a goroutine termina e libera a conexão com o
		// provedor em vez de bloquear para sempre
		send := func(chunk StreamChunk) bool {
			select {
			case chunks <- chunk:
				return true
			case <-ctx.Done():
				return false
			}
		}

		stream, err := p.client.CreateChatCompletionStream(ctx, req)
		if err != nil {
			send(StreamChunk{Error: fmt.Errorf("erro ao criar stream de chat: %w", err)})
			return
		}
		defer stream.Close()

		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				send(StreamChunk{Done: true})
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					logrus.Debug("chat: stream cancelado pelo cliente")
					return
				}
				send(StreamChunk{Error: fmt.Errorf("erro no stream de chat: %w", err)})
				return
			}

			if len(response.Choices) > 0 {
				content := response.Choices[0].Delta.Content
				if content != "" && !send(StreamChunk{Content: content}) {
					return
				}
			}
		}
	}()

	return chunks, nil
}
