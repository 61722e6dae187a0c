package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const adGroupsTable = "ad_groups g"

type AdGroupRepository interface {
	ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error)
	// ListStopTimesByAccount maps each ad group's external ID to its stop
	// time, nil when the group has no scheduled end.
	ListStopTimesByAccount(ctx context.Context, accountID string) (map[string]*time.Time, error)
	SaveOrUpdateBatch(ctx context.Context, adGroups []*domain.AdGroup) error
}

type adGroupRepository struct {
	conn *postgres.Connection
}

func NewAdGroupRepository(conn *postgres.Connection) AdGroupRepository {
	return &adGroupRepository{
		conn: conn,
	}
}

func (r *adGroupRepository) ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("g.external_id, g.id").
		From(adGroupsTable).
		Where(squirrel.Eq{"g.account_id": accountID}).
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

func (r *adGroupRepository) ListStopTimesByAccount(ctx context.Context, accountID string) (map[string]*time.Time, error) {
	query, args, err := squirrel.
		Select("g.external_id, g.stop_time").
		From(adGroupsTable).
		Where(squirrel.Eq{"g.account_id": accountID}).
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

	stopTimes := make(map[string]*time.Time)
	for rows.Next() {
		var externalID string
		var stopTime *time.Time
		if err := rows.Scan(&externalID, &stopTime); err != nil {
			return nil, err
		}
		stopTimes[externalID] = stopTime
	}

	return stopTimes, rows.Err()
}

func (r *adGroupRepository) SaveOrUpdateBatch(ctx context.Context, adGroups []*domain.AdGroup) error {
	if len(adGroups) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_groups").
		Columns("id", "account_id", "campaign_id", "external_id", "name", "status", "effective_status", "daily_budget", "start_time", "stop_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, g := range adGroups {
		query = query.Values(
			g.ID,
			g.AccountID,
			g.CampaignID,
			g.ExternalID,
			g.Name,
			g.Status,
			g.EffectiveStatus,
			g.DailyBudget,
			g.StartTime,
			g.StopTime,
			g.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			effective_status = EXCLUDED.effective_status,
			daily_budget = EXCLUDED.daily_budget,
			start_time = EXCLUDED.start_time,
			stop_time = EXCLUDED.stop_time,
			updated_time = EXCLUDED.updated_time,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building ad_groups upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("ad_groups upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}
