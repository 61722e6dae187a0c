package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const (
	accountsTable   = "accounts a"
	identitiesTable = "identities i"

	accountColumns = "a.id, a.external_id, a.tenant_id, a.identity_id, a.platform, a.name, a.currency, a.timezone, a.status, a.balance, a.branch_id, a.last_synced_at, a.disconnected_at"
)

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetByExternalID(ctx context.Context, externalID string, platform domain.PlatformCode) (*domain.Account, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]*domain.Account, error)
	SaveOrUpdate(ctx context.Context, accounts []*domain.Account) error
	UpdateBranch(ctx context.Context, accountID string, branchID *string) error
	UpdateSyncState(ctx context.Context, account *domain.Account) error
	// MarkDisconnected retains the row but unlinks it from its branch, so
	// synced insights survive the disconnect.
	MarkDisconnected(ctx context.Context, accountID string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.id": accountID})
}

func (r *accountRepository) GetByExternalID(ctx context.Context, externalID string, platform domain.PlatformCode) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.external_id": externalID, "a.platform": platform})
}

func (r *accountRepository) getAccount(ctx context.Context, whereClause map[string]interface{}) (*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	acc := &domain.Account{}
	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.TenantID,
		&acc.IdentityID,
		&acc.Platform,
		&acc.Name,
		&acc.Currency,
		&acc.Timezone,
		&acc.Status,
		&acc.Balance,
		&acc.BranchID,
		&acc.LastSyncedAt,
		&acc.DisconnectedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

// ListActiveByTenant loads the tenant's active accounts joined with the
// owning identity's access token, so one query arms a whole sync pass.
func (r *accountRepository) ListActiveByTenant(ctx context.Context, tenantID string) ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select(accountColumns+", i.access_token").
		From(accountsTable).
		Join("identities i ON a.identity_id = i.id").
		Where(squirrel.Eq{
			"a.tenant_id": tenantID,
			"a.status":    domain.AccountStatusActive,
			"i.status":    "ACTIVE",
		}).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc := &domain.Account{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.TenantID,
			&acc.IdentityID,
			&acc.Platform,
			&acc.Name,
			&acc.Currency,
			&acc.Timezone,
			&acc.Status,
			&acc.Balance,
			&acc.BranchID,
			&acc.LastSyncedAt,
			&acc.DisconnectedAt,
			&acc.AccessToken,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) SaveOrUpdate(ctx context.Context, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "tenant_id", "identity_id", "platform", "name", "currency", "timezone", "status", "balance", "branch_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		query = query.Values(
			account.ID,
			account.ExternalID,
			account.TenantID,
			account.IdentityID,
			account.Platform,
			account.Name,
			account.Currency,
			account.Timezone,
			account.Status,
			account.Balance,
			account.BranchID,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (external_id, platform) DO UPDATE SET
			name = EXCLUDED.name,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone,
			status = EXCLUDED.status,
			balance = EXCLUDED.balance,
			branch_id = COALESCE(accounts.branch_id, EXCLUDED.branch_id),
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building accounts upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("accounts upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

func (r *accountRepository) UpdateBranch(ctx context.Context, accountID string, branchID *string) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("branch_id", branchID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *accountRepository) MarkDisconnected(ctx context.Context, accountID string) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("status", domain.AccountStatusDisconnected).
		Set("disconnected_at", time.Now().UTC()).
		Set("branch_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

// UpdateSyncState refreshes the mutable platform-owned fields and stamps
// last_synced_at, which drives the incremental updated_time filter.
func (r *accountRepository) UpdateSyncState(ctx context.Context, account *domain.Account) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("name", account.Name).
		Set("currency", account.Currency).
		Set("timezone", account.Timezone).
		Set("status", account.Status).
		Set("balance", account.Balance).
		Set("last_synced_at", time.Now().UTC()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}
