package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const creativesTable = "creatives cr"

type CreativeRepository interface {
	ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Creative, error)
	SaveOrUpdateBatch(ctx context.Context, creatives []*domain.Creative) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("cr.external_id, cr.id").
		From(creativesTable).
		Where(squirrel.Eq{"cr.account_id": accountID}).
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

	idMap := make(map[string]string)
	for rows.Next() {
		var externalID, id string
		if err := rows.Scan(&externalID, &id); err != nil {
			return nil, err
		}
		idMap[externalID] = id
	}

	return idMap, rows.Err()
}

func (r *creativeRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Creative, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.account_id, cr.external_id, cr.name, cr.title, cr.body, cr.thumbnail_url").
		From(creativesTable).
		Where(squirrel.Eq{"cr.account_id": accountID}).
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

	creatives := make([]*domain.Creative, 0)
	for rows.Next() {
		c := &domain.Creative{}
		if err := rows.Scan(&c.ID, &c.AccountID, &c.ExternalID, &c.Name, &c.Title, &c.Body, &c.ThumbnailURL); err != nil {
			return nil, err
		}
		creatives = append(creatives, c)
	}

	return creatives, rows.Err()
}

func (r *creativeRepository) SaveOrUpdateBatch(ctx context.Context, creatives []*domain.Creative) error {
	if len(creatives) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("creatives").
		Columns("id", "account_id", "external_id", "name", "title", "body", "thumbnail_url").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range creatives {
		query = query.Values(
			c.ID,
			c.AccountID,
			c.ExternalID,
			c.Name,
			c.Title,
			c.Body,
			c.ThumbnailURL,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			thumbnail_url = EXCLUDED.thumbnail_url,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building creatives upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("creatives upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}
