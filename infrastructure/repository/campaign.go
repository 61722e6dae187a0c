package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	// ListIDMapByAccount returns external_id -> internal id for one account,
	// used to preserve internal ids across sync passes.
	ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error)
	SaveOrUpdateBatch(ctx context.Context, campaigns []*domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListIDMapByAccount(ctx context.Context, accountID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("c.external_id, c.id").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
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

func (r *campaignRepository) SaveOrUpdateBatch(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "external_id", "name", "objective", "status", "effective_status", "daily_budget", "lifetime_budget", "start_time", "stop_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		query = query.Values(
			c.ID,
			c.AccountID,
			c.ExternalID,
			c.Name,
			c.Objective,
			c.Status,
			c.EffectiveStatus,
			c.DailyBudget,
			c.LifetimeBudget,
			c.StartTime,
			c.StopTime,
			c.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			objective = EXCLUDED.objective,
			status = EXCLUDED.status,
			effective_status = EXCLUDED.effective_status,
			daily_budget = EXCLUDED.daily_budget,
			lifetime_budget = EXCLUDED.lifetime_budget,
			start_time = EXCLUDED.start_time,
			stop_time = EXCLUDED.stop_time,
			updated_time = EXCLUDED.updated_time,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building campaigns upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("campaigns upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}
