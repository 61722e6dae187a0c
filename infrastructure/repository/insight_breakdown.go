package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

type InsightBreakdownRepository interface {
	UpsertBatch(ctx context.Context, breakdowns []*domain.InsightBreakdown) error
}

type insightBreakdownRepository struct {
	conn *postgres.Connection
}

func NewInsightBreakdownRepository(conn *postgres.Connection) InsightBreakdownRepository {
	return &insightBreakdownRepository{
		conn: conn,
	}
}

func (r *insightBreakdownRepository) UpsertBatch(ctx context.Context, breakdowns []*domain.InsightBreakdown) error {
	if len(breakdowns) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("insight_breakdowns").
		Columns("insight_id", "dimension", "dim_value", "spend", "impressions", "clicks", "reach", "results", "messaging_total", "messaging_new", "purchase_value").
		PlaceholderFormat(squirrel.Dollar)

	for _, b := range breakdowns {
		query = query.Values(
			b.InsightID,
			b.Dimension,
			b.DimValue,
			b.Spend,
			b.Impressions,
			b.Clicks,
			b.Reach,
			b.Results,
			b.MessagingTotal,
			b.MessagingNew,
			b.PurchaseValue,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (insight_id, dimension, dim_value) DO UPDATE SET
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
		return fmt.Errorf("building insight_breakdowns upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("insight_breakdowns upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}
