package domain

import (
	"time"
)

type AccountStatus string

const (
	AccountStatusConnected         AccountStatus = "CONNECTED"
	AccountStatusDisconnected      AccountStatus = "DISCONNECTED"
	AccountStatusNeedsReconnection AccountStatus = "NEEDS_RECONNECTION"
)

// Account representa uma conta de anúncios conectada ao assistente
type Account struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Timezone     string        `json:"timezone"`
	Status       AccountStatus `json:"status"`
	LastSyncedAt *time.Time    `json:"last_synced_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsConnected indica se a conta pode ser consultada na plataforma de anúncios
func (a *Account) IsConnected() bool {
	return a != nil && a.Status == AccountStatusConnected
}

type RegisterAccountRequest struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	Timezone   string `json:"timezone"`
}

type AccountResponse struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Status       AccountStatus `json:"status"`
	LastSyncedAt *time.Time    `json:"last_synced_at"`
}
