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

const insightsTable = "insights ins"

type InsightRepository interface {
	// UpsertBatch writes the rows atomically on (account_id, ad_id, date) and
	// returns "adID|date" -> stored row id, so breakdown children can link to
	// their just-written parents.
	UpsertBatch(ctx context.Context, insights []*domain.Insight) (map[string]int64, error)

	// ListKeyMap returns "adID|date" -> row id for an account over a date
	// range, so a breakdown pass can link children without rewriting parents.
	ListKeyMap(ctx context.Context, accountID string, start, end time.Time) (map[string]int64, error)

	// SumByBranchAndDate recomputes the branch rollup for one date from the
	// facts of accounts currently mapped to the branch.
	SumByBranchAndDate(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) UpsertBatch(ctx context.Context, insights []*domain.Insight) (map[string]int64, error) {
	if len(insights) == 0 {
		return map[string]int64{}, nil
	}

	query := squirrel.StatementBuilder.
		Insert("insights").
		Columns("account_id", "campaign_id", "ad_group_id", "ad_id", "date", "spend", "impressions", "clicks", "reach", "results", "messaging_total", "messaging_new", "purchase_value").
		PlaceholderFormat(squirrel.Dollar)

	for _, ins := range insights {
		query = query.Values(
			ins.AccountID,
			ins.CampaignID,
			ins.AdGroupID,
			ins.AdID,
			ins.Date.Format("2006-01-02"),
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
		ON CONFLICT (account_id, ad_id, date) DO UPDATE SET
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
		RETURNING id, ad_id, date
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insights upsert: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("insights upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]int64, len(insights))
	for rows.Next() {
		var (
			id   int64
			adID string
			date time.Time
		)
		if err := rows.Scan(&id, &adID, &date); err != nil {
			return nil, err
		}
		ids[insightKey(adID, date)] = id
	}

	return ids, rows.Err()
}

func (r *insightRepository) ListKeyMap(ctx context.Context, accountID string, start, end time.Time) (map[string]int64, error) {
	query, args, err := squirrel.
		Select("ins.id", "ins.ad_id", "ins.date").
		From(insightsTable).
		Where(squirrel.Eq{"ins.account_id": accountID}).
		Where(squirrel.GtOrEq{"ins.date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ins.date": end.Format("2006-01-02")}).
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

	ids := make(map[string]int64)
	for rows.Next() {
		var (
			id   int64
			adID string
			date time.Time
		)
		if err := rows.Scan(&id, &adID, &date); err != nil {
			return nil, err
		}
		ids[insightKey(adID, date)] = id
	}

	return ids, rows.Err()
}

func (r *insightRepository) SumByBranchAndDate(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(DISTINCT ins.account_id)",
			"COALESCE(SUM(ins.spend), 0)",
			"COALESCE(SUM(ins.impressions), 0)",
			"COALESCE(SUM(ins.clicks), 0)",
			"COALESCE(SUM(ins.reach), 0)",
			"COALESCE(SUM(ins.results), 0)",
			"COALESCE(SUM(ins.messaging_total), 0)",
			"COALESCE(SUM(ins.messaging_new), 0)",
			"COALESCE(SUM(ins.purchase_value), 0)",
		).
		From(insightsTable).
		Join("accounts a ON ins.account_id = a.id").
		Where(squirrel.Eq{
			"a.branch_id": branchID,
			"a.platform":  platform,
			"ins.date":    date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	stat := &domain.BranchDailyStat{
		BranchID:     branchID,
		Date:         date,
		PlatformCode: platform,
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&stat.Accounts,
		&stat.Spend,
		&stat.Impressions,
		&stat.Clicks,
		&stat.Reach,
		&stat.Results,
		&stat.MessagingTotal,
		&stat.MessagingNew,
		&stat.PurchaseValue,
	); err != nil {
		if err == sql.ErrNoRows {
			return stat, nil
		}
		return nil, err
	}

	return stat, nil
}

func insightKey(adID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", adID, date.Format("2006-01-02"))
}
