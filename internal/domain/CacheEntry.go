package domain

import (
	"encoding/json"
	"time"
)

// CacheEntry representa uma linha da tabela metrics_cache
type CacheEntry struct {
	ID        int64           `json:"id"`
	AccountID string          `json:"account_id"`
	CacheKey  string          `json:"cache_key"`
	QueryHash string          `json:"query_hash"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// IsExpired indica se a entrada já passou do prazo de validade.
// Uma entrada expirada nunca pode ser servida como hit, mesmo que ainda
// esteja fisicamente presente na tabela.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return e == nil || !e.ExpiresAt.After(now)
}
