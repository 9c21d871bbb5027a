package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const (
	dailyMetricsTable = "daily_metrics dm"
)

type DailyMetricsRepository interface {
	GetByDateRange(accountID string, entityType domain.EntityType, startDate, endDate time.Time) ([]*domain.DailyMetricEntry, error)
	SaveOrUpdate(entry *domain.DailyMetricEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type dailyMetricsRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricsRepository(conn *postgres.Connection) DailyMetricsRepository {
	return &dailyMetricsRepository{
		conn: conn,
	}
}

func (r *dailyMetricsRepository) GetByDateRange(accountID string, entityType domain.EntityType, startDate, endDate time.Time) ([]*domain.DailyMetricEntry, error) {
	query, args, err := squirrel.
		Select("dm.id, dm.account_id, dm.entity_type, dm.entity_id, dm.entity_name, dm.date, dm.metrics, dm.created_at, dm.updated_at").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.account_id": accountID, "dm.entity_type": entityType}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format("2006-01-02")}).
		OrderBy("dm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DailyMetricEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *dailyMetricsRepository) SaveOrUpdate(entry *domain.DailyMetricEntry) error {
	var metricsJSON []byte
	var err error

	if entry.Metrics != nil {
		metricsJSON, err = json.Marshal(entry.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns("account_id", "entity_type", "entity_id", "entity_name", "date", "metrics").
		Values(
			entry.AccountID,
			entry.EntityType,
			entry.EntityID,
			entry.EntityName,
			entry.Date.Format("2006-01-02"),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, entity_type, entity_id, date) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricsRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("daily_metrics").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *dailyMetricsRepository) scanEntry(rows *sql.Rows) (*domain.DailyMetricEntry, error) {
	entry := &domain.DailyMetricEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.EntityType,
		&entry.EntityID,
		&entry.EntityName,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.Metrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}
