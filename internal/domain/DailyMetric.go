package domain

import (
	"time"
)

// DailyMetricEntry representa uma linha da tabela daily_metrics, o insumo
// histórico para o cálculo de tendências
type DailyMetricEntry struct {
	ID         int64      `json:"id"`
	AccountID  string     `json:"account_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	EntityName string     `json:"entity_name"`
	Date       time.Time  `json:"date"`
	Metrics    *Metrics   `json:"metrics"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
