package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-assistant-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	GetAccountByCustomerID(customerID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	SaveOrUpdate(account *domain.Account) error
	UpdateLastSyncedAt(accountID string, syncedAt time.Time) error
	UpdateStatus(accountID string, status domain.AccountStatus) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByCustomerID(customerID string) (*domain.Account, error) {
	return a.getAccount(squirrel.Eq{"a.customer_id": customerID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.customer_id, a.name, a.currency, a.timezone, a.status, a.last_synced_at, a.created_at, a.updated_at").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := a.conn.QueryRow(query, args...)

	acc, err := a.scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	acc := &domain.Account{}

	if err := row.Scan(
		&acc.ID,
		&acc.CustomerID,
		&acc.Name,
		&acc.Currency,
		&acc.Timezone,
		&acc.Status,
		&acc.LastSyncedAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	builder := squirrel.
		Select("a.id, a.customer_id, a.name, a.currency, a.timezone, a.status, a.last_synced_at, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		statuses := make([]string, 0, len(availableStatus))
		for _, status := range availableStatus {
			statuses = append(statuses, string(status))
		}
		builder = builder.Where(squirrel.Eq{"a.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc := &domain.Account{}
		if err := rows.Scan(
			&acc.ID,
			&acc.CustomerID,
			&acc.Name,
			&acc.Currency,
			&acc.Timezone,
			&acc.Status,
			&acc.LastSyncedAt,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveOrUpdate(account *domain.Account) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "customer_id", "name", "currency", "timezone", "status").
		Values(
			account.ID,
			account.CustomerID,
			account.Name,
			account.Currency,
			account.Timezone,
			account.Status,
		).
		Suffix(`
			ON CONFLICT (customer_id) DO UPDATE SET
				name = EXCLUDED.name,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateLastSyncedAt(accountID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateStatus(accountID string, status domain.AccountStatus) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
