package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const adsTable = "ads ad"

const adColumns = "ad.id, ad.account_id, ad.campaign_id, ad.ad_group_id, ad.external_id, ad.name, ad.status, ad.effective_status, ad.creative_id, ad.stop_time, ad.updated_time"

type AdRepository interface {
	ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Ad, error)
	GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Ad, error)
	SaveOrUpdateBatch(ctx context.Context, ads []*domain.Ad) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("ad.external_id, ad.id").
		From(adsTable).
		Where(squirrel.Eq{"ad.account_id": accountID}).
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

func (r *adRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(squirrel.Eq{"ad.account_id": accountID}).
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func (r *adRepository) GetByExternalID(ctx context.Context, accountID, externalID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(squirrel.Eq{"ad.account_id": accountID, "ad.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	ad := &domain.Ad{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&ad.ID,
		&ad.AccountID,
		&ad.CampaignID,
		&ad.AdGroupID,
		&ad.ExternalID,
		&ad.Name,
		&ad.Status,
		&ad.EffectiveStatus,
		&ad.CreativeID,
		&ad.StopTime,
		&ad.UpdatedTime,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return ad, nil
}

func (r *adRepository) SaveOrUpdateBatch(ctx context.Context, ads []*domain.Ad) error {
	if len(ads) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("id", "account_id", "campaign_id", "ad_group_id", "external_id", "name", "status", "effective_status", "creative_id", "stop_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, ad := range ads {
		query = query.Values(
			ad.ID,
			ad.AccountID,
			ad.CampaignID,
			ad.AdGroupID,
			ad.ExternalID,
			ad.Name,
			ad.Status,
			ad.EffectiveStatus,
			ad.CreativeID,
			ad.StopTime,
			ad.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			ad_group_id = EXCLUDED.ad_group_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			effective_status = EXCLUDED.effective_status,
			creative_id = EXCLUDED.creative_id,
			stop_time = EXCLUDED.stop_time,
			updated_time = EXCLUDED.updated_time,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building ads upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("ads upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

func scanAd(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}
	if err := rows.Scan(
		&ad.ID,
		&ad.AccountID,
		&ad.CampaignID,
		&ad.AdGroupID,
		&ad.ExternalID,
		&ad.Name,
		&ad.Status,
		&ad.EffectiveStatus,
		&ad.CreativeID,
		&ad.StopTime,
		&ad.UpdatedTime,
	); err != nil {
		return nil, err
	}
	return ad, nil
}
