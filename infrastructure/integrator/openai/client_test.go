package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-assistant-api/internal/config"
)

// streamServer simula o endpoint de chat em SSE devolvendo os tokens
// informados seguidos do marcador de fim de stream
func streamServer(tokens []string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		for _, token := range tokens {
			fmt.Fprintf(w, "data: {\"id\":\"1\",\"object\":\"chat.completion.chunk\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n", token)
			flusher.Flush()
		}

		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
}

func testProvider(serverURL string) *OpenAIProvider {
	clientConfig := goopenai.DefaultConfig("test-key")
	clientConfig.BaseURL = serverURL + "/v1"

	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(clientConfig),
		cfg: config.OpenAI{
			Model:     "gpt-4o-mini",
			MaxTokens: 64,
		},
	}
}

func TestOpenAIProvider_StreamChat(t *testing.T) {
	srv := streamServer([]string{"Suas campanhas", " vão bem."})
	defer srv.Close()

	provider := testProvider(srv.URL)

	chunks, err := provider.StreamChat(context.Background(), []Message{
		{Role: "user", Content: "como estão as campanhas?"},
	})
	assert.NoError(t, err)

	var contents []string
	var done bool
	for chunk := range chunks {
		assert.NoError(t, chunk.Error)
		if chunk.Done {
			done = true
			continue
		}
		contents = append(contents, chunk.Content)
	}

	assert.True(t, done)
	assert.Equal(t, []string{"Suas campanhas", " vão bem."}, contents)
}

func TestOpenAIProvider_StreamChat_CancelWithoutDraining(t *testing.T) {
	srv := streamServer([]string{"primeiro token"})
	defer srv.Close()

	provider := testProvider(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chunks, err := provider.StreamChat(ctx, []Message{
		{Role: "user", Content: "oi"},
	})
	assert.NoError(t, err)

	first := <-chunks
	assert.Equal(t, "primeiro token", first.Content)

	// O consumidor cancela e para de ler; a produtora precisa terminar e
	// fechar o canal em vez de ficar bloqueada no envio do marcador de fim
	cancel()
	time.Sleep(100 * time.Millisecond)

	select {
	case chunk, ok := <-chunks:
		assert.False(t, ok, "esperava canal fechado após o cancelamento, recebeu %+v", chunk)
	case <-time.After(2 * time.Second):
		t.Fatal("a goroutine do stream não terminou após o cancelamento")
	}
}
