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

const branchDailyStatsTable = "branch_daily_stats s"

type BranchDailyStatRepository interface {
	// Replace overwrites the rollup row for (branch, date, platform) with the
	// freshly recomputed totals.
	Replace(ctx context.Context, stat *domain.BranchDailyStat) error
	GetByBranchAndDate(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error)
}

type branchDailyStatRepository struct {
	conn *postgres.Connection
}

func NewBranchDailyStatRepository(conn *postgres.Connection) BranchDailyStatRepository {
	return &branchDailyStatRepository{
		conn: conn,
	}
}

func (r *branchDailyStatRepository) Replace(ctx context.Context, stat *domain.BranchDailyStat) error {
	query := squirrel.StatementBuilder.
		Insert("branch_daily_stats").
		Columns("branch_id", "date", "platform_code", "accounts", "spend", "impressions", "clicks", "reach", "results", "messaging_total", "messaging_new", "purchase_value").
		Values(
			stat.BranchID,
			stat.Date.Format("2006-01-02"),
			stat.PlatformCode,
			stat.Accounts,
			stat.Spend,
			stat.Impressions,
			stat.Clicks,
			stat.Reach,
			stat.Results,
			stat.MessagingTotal,
			stat.MessagingNew,
			stat.PurchaseValue,
		).
		Suffix(`
			ON CONFLICT (branch_id, date, platform_code) DO UPDATE SET
				accounts = EXCLUDED.accounts,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				reach = EXCLUDED.reach,
				results = EXCLUDED.results,
				messaging_total = EXCLUDED.messaging_total,
				messaging_new = EXCLUDED.messaging_new,
				purchase_value = EXCLUDED.purchase_value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building branch_daily_stats upsert: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("branch_daily_stats upsert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

func (r *branchDailyStatRepository) GetByBranchAndDate(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error) {
	query, args, err := squirrel.
		Select("s.id, s.branch_id, s.date, s.platform_code, s.accounts, s.spend, s.impressions, s.clicks, s.reach, s.results, s.messaging_total, s.messaging_new, s.purchase_value").
		From(branchDailyStatsTable).
		Where(squirrel.Eq{
			"s.branch_id":     branchID,
			"s.platform_code": platform,
			"s.date":          date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	stat := &domain.BranchDailyStat{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&stat.ID,
		&stat.BranchID,
		&stat.Date,
		&stat.PlatformCode,
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
			return nil, nil
		}
		return nil, err
	}

	return stat, nil
}
