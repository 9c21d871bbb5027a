package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, filters *domain.InsightFilters, err error)
	}{
		{
			name:   "Sem parâmetros devolve filtros vazios",
			target: "/v1/accounts/ABC123/ai-context",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.NoError(t, err)
				assert.Empty(t, filters.DateRange)
				assert.Nil(t, filters.StartDate)
			},
		},
		{
			name:   "Período nomeado é repassado",
			target: "/v1/accounts/ABC123/ai-context?date_range=LAST_7_DAYS",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.DateRangeLast7Days, filters.DateRange)
			},
		},
		{
			name:   "Datas completas viram período customizado",
			target: "/v1/accounts/ABC123/ai-context?start_date=2026-08-01&end_date=2026-08-27",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.DateRangeCustom, filters.DateRange)
				assert.NotNil(t, filters.StartDate)
				assert.NotNil(t, filters.EndDate)
			},
		},
		{
			name:   "Só data inicial é rejeitada",
			target: "/v1/accounts/ABC123/ai-context?start_date=2026-08-01",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.ErrorIs(t, err, errEmptyCustomRange)
				assert.Nil(t, filters)
			},
		},
		{
			name:   "Só data final é rejeitada",
			target: "/v1/accounts/ABC123/ai-context?end_date=2026-08-27",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.ErrorIs(t, err, errEmptyCustomRange)
				assert.Nil(t, filters)
			},
		},
		{
			name:   "date_range CUSTOM sem datas é rejeitado",
			target: "/v1/accounts/ABC123/ai-context?date_range=CUSTOM",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.ErrorIs(t, err, errEmptyCustomRange)
				assert.Nil(t, filters)
			},
		},
		{
			name:   "Data mal formatada é rejeitada",
			target: "/v1/accounts/ABC123/ai-context?start_date=01-08-2026",
			validate: func(t *testing.T, filters *domain.InsightFilters, err error) {
				assert.Error(t, err)
				assert.Nil(t, filters)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			filters, err := parseFilters(r)
			tt.validate(t, filters, err)
		})
	}
}
