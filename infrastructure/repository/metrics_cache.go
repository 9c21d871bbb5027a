package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const (
	metricsCacheTable = "metrics_cache mc"
)

type MetricsCacheRepository interface {
	// Get retorna a entrada válida para (conta, chave) ou nil em caso de
	// miss. Entradas expiradas nunca são retornadas, mesmo que ainda
	// existam fisicamente na tabela.
	Get(accountID, cacheKey string) (*domain.CacheEntry, error)
	// Set grava a entrada com upsert idempotente. Escritas concorrentes
	// para a mesma chave podem competir; a última vence, o que é aceitável
	// porque o cache é um artefato derivado e reconstruível.
	Set(accountID, cacheKey string, payload json.RawMessage, queryHash string, ttlHours int) error
	// CleanupExpired remove as linhas vencidas e retorna quantas foram
	// apagadas. É uma rotina de manutenção, não um requisito de correção.
	CleanupExpired() (int64, error)
}

type metricsCacheRepository struct {
	conn *postgres.Connection
}

func NewMetricsCacheRepository(conn *postgres.Connection) MetricsCacheRepository {
	return &metricsCacheRepository{
		conn: conn,
	}
}

func (r *metricsCacheRepository) Get(accountID, cacheKey string) (*domain.CacheEntry, error) {
	query, args, err := squirrel.
		Select("mc.id, mc.account_id, mc.cache_key, mc.query_hash, mc.data, mc.created_at, mc.expires_at").
		From(metricsCacheTable).
		Where(squirrel.Eq{"mc.account_id": accountID, "mc.cache_key": cacheKey}).
		Where(squirrel.Gt{"mc.expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.CacheEntry{}
	row := r.conn.QueryRow(query, args...)

	err = row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.CacheKey,
		&entry.QueryHash,
		&entry.Data,
		&entry.CreatedAt,
		&entry.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de cache: %w", err)
	}

	// Validação de frescor no momento da leitura, além do filtro da query
	if entry.IsExpired(time.Now()) {
		return nil, nil
	}

	return entry, nil
}

func (r *metricsCacheRepository) Set(accountID, cacheKey string, payload json.RawMessage, queryHash string, ttlHours int) error {
	expiresAt := time.Now().Add(time.Duration(ttlHours) * time.Hour)

	query := squirrel.StatementBuilder.
		Insert("metrics_cache").
		Columns("account_id", "cache_key", "query_hash", "data", "expires_at").
		Values(
			accountID,
			cacheKey,
			queryHash,
			[]byte(payload),
			expiresAt,
		).
		Suffix(`
			ON CONFLICT (account_id, cache_key) DO UPDATE SET
				query_hash = EXCLUDED.query_hash,
				data = EXCLUDED.data,
				created_at = NOW(),
				expires_at = EXCLUDED.expires_at
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

func (r *metricsCacheRepository) CleanupExpired() (int64, error) {
	query, args, err := squirrel.
		Delete("metrics_cache").
		Where(squirrel.LtOrEq{"expires_at": time.Now()}).
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

	if rowsAffected > 0 {
		logrus.WithField("rows", rowsAffected).Info("Entradas expiradas removidas do cache de métricas")
	}

	return rowsAffected, nil
}
