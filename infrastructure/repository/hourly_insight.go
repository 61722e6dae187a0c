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

type HourlyInsightRepository interface {
	UpsertBatch(ctx context.Context, insights []*domain.HourlyInsight) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type hourlyInsightRepository struct {
	conn *postgres.Connection
}

func NewHourlyInsightRepository(conn *postgres.Connection) HourlyInsightRepository {
	return &hourlyInsightRepository{
		conn: conn,
	}
}

func (r *hourlyInsightRepository) UpsertBatch(ctx context.Context, insights []*domain.HourlyInsight) error {
	if len(insights) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("hourly_insights").
		Columns("account_id", "campaign_id", "ad_group_id", "ad_id", "date", "hour", "spend", "impressions", "clicks", "reach", "results", "messaging_total", "messaging_new", "purchase_value").
		PlaceholderFormat(squirrel.Dollar)

	for _, ins := range insights {
		query = query.Values(
			ins.AccountID,
			ins.CampaignID,
			ins.AdGroupID,
			ins.AdID,
			ins.Date.Format("2006-01-02"),
			ins.Hour,
			ins.Spend,
			ins.Impressions,
			ins.Clicks,
			ins.Reach,
			ins.Results,
			ins.MessagingTotal,
			ins.MessagingNew,
			ins.PurchaseValue,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, ad_id, date, hour) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			ad_group_id = EXCLUDED.ad_group_id,
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			reach = EXCLUDED.reach,
			results = EXCLUDED.results,
			messaging_total = EXCLUDED.messaging_total,
			messaging_new = EXCLUDED.messaging_new,
			purchase_value = EXCLUDED.purchase_value,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building hourly_insights upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("hourly_insights upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

// DeleteOlderThan prunes hourly facts past the retention window. Daily facts
// are kept forever; only the hour-level detail ages out.
func (r *hourlyInsightRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("hourly_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
