package domain

// ChatRequest é a mensagem enviada pelo usuário para o assistente
type ChatRequest struct {
	Message string          `json:"message"`
	Filters *InsightFilters `json:"filters,omitempty"`
}
