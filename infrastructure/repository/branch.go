package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const branchesTable = "branches b"

type BranchRepository interface {
	GetByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Branch, error)
}

type branchRepository struct {
	conn *postgres.Connection
}

func NewBranchRepository(conn *postgres.Connection) BranchRepository {
	return &branchRepository{
		conn: conn,
	}
}

func (r *branchRepository) GetByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query, args, err := squirrel.
		Select("b.id, b.tenant_id, b.name, b.keyword").
		From(branchesTable).
		Where(squirrel.Eq{"b.id": branchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	branch := &domain.Branch{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&branch.ID, &branch.TenantID, &branch.Name, &branch.Keyword); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return branch, nil
}

func (r *branchRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Branch, error) {
	query, args, err := squirrel.
		Select("b.id, b.tenant_id, b.name, b.keyword").
		From(branchesTable).
		Where(squirrel.Eq{"b.tenant_id": tenantID}).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]*domain.Branch, 0)
	for rows.Next() {
		branch := &domain.Branch{}
		if err := rows.Scan(&branch.ID, &branch.TenantID, &branch.Name, &branch.Keyword); err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return branches, rows.Err()
}
