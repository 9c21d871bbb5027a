package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
	"github.com/vfg2006/ads-assistant-api/internal/usecases/conversing"
	"github.com/vfg2006/ads-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/ads-assistant-api/pkg/log"
)

type chatEvent struct {
	Content string `json:"content,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StreamChat responde a pergunta do usuário via server-sent events. Quando o
// cliente desconecta, o contexto da requisição cancela o stream do LLM.
func StreamChat(service conversing.Conversation) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("chat: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		chunks, err := service.Chat(r.Context(), id, &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("chat: failed to start conversation")

			writeUsecaseError(w, err)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		for chunk := range chunks {
			event := chatEvent{Content: chunk.Content, Done: chunk.Done}
			if chunk.Error != nil {
				event.Error = chunk.Error.Error()
				logger.WithFields(log.Fields{
					"account_id": id,
					"error":      chunk.Error.Error(),
				}).Error("chat: stream error from LLM provider")
			}

			writeChatEvent(w, flusher, event)

			if chunk.Done || chunk.Error != nil {
				break
			}

			select {
			case <-r.Context().Done():
				logger.WithField("account_id", id).Info("chat: client disconnected, stopping stream")
				return
			default:
			}
		}
	})
}

func writeChatEvent(w http.ResponseWriter, flusher http.Flusher, event chatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	w.Write([]byte("data: "))
	w.Write(payload)
	w.Write([]byte("\n\n"))
	flusher.Flush()
}
