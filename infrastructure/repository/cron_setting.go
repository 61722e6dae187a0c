package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const cronSettingsTable = "cron_settings cs"

type CronSettingRepository interface {
	// ListEnabled loads every enabled setting. Called fresh on each tick so
	// schedule changes take effect without a restart.
	ListEnabled(ctx context.Context) ([]*domain.CronSetting, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.CronSetting, error)
	SaveOrUpdate(ctx context.Context, setting *domain.CronSetting) error
}

type cronSettingRepository struct {
	conn *postgres.Connection
}

func NewCronSettingRepository(conn *postgres.Connection) CronSettingRepository {
	return &cronSettingRepository{
		conn: conn,
	}
}

func (r *cronSettingRepository) ListEnabled(ctx context.Context) ([]*domain.CronSetting, error) {
	return r.list(ctx, squirrel.Eq{"cs.enabled": true})
}

func (r *cronSettingRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.CronSetting, error) {
	return r.list(ctx, squirrel.Eq{"cs.tenant_id": tenantID})
}

func (r *cronSettingRepository) list(ctx context.Context, whereClause map[string]interface{}) ([]*domain.CronSetting, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.tenant_id, cs.sync_type, cs.allowed_hours, cs.enabled").
		From(cronSettingsTable).
		Where(whereClause).
		OrderBy("cs.tenant_id ASC, cs.sync_type ASC").
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

	settings := make([]*domain.CronSetting, 0)
	for rows.Next() {
		setting := &domain.CronSetting{}
		var hours pq.Int64Array
		if err := rows.Scan(&setting.ID, &setting.TenantID, &setting.SyncType, &hours, &setting.Enabled); err != nil {
			return nil, err
		}
		setting.AllowedHours = make([]int, 0, len(hours))
		for _, h := range hours {
			setting.AllowedHours = append(setting.AllowedHours, int(h))
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}

func (r *cronSettingRepository) SaveOrUpdate(ctx context.Context, setting *domain.CronSetting) error {
	hours := make(pq.Int64Array, 0, len(setting.AllowedHours))
	for _, h := range setting.AllowedHours {
		hours = append(hours, int64(h))
	}

	query := squirrel.StatementBuilder.
		Insert("cron_settings").
		Columns("id", "tenant_id", "sync_type", "allowed_hours", "enabled").
		Values(setting.ID, setting.TenantID, setting.SyncType, hours, setting.Enabled).
		Suffix(`
			ON CONFLICT (tenant_id, sync_type) DO UPDATE SET
				allowed_hours = EXCLUDED.allowed_hours,
				enabled = EXCLUDED.enabled,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building cron_settings upsert: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	return err
}
