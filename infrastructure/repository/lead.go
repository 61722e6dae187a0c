package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/internal/domain"
)

const leadsTable = "leads l"

type LeadRepository interface {
	ListUnattributed(ctx context.Context, tenantID string, limit uint64) ([]*domain.Lead, error)
	// Attribute links a lead to an ad. The WHERE guard keeps the backfill
	// idempotent: a lead already attributed is never rewritten.
	Attribute(ctx context.Context, leadID, adID string, method domain.LeadAttribution) (bool, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) ListUnattributed(ctx context.Context, tenantID string, limit uint64) ([]*domain.Lead, error) {
	query, args, err := squirrel.
		Select("l.id, l.tenant_id, l.account_id, l.conversation_id, l.title, l.created_at").
		From(leadsTable).
		Where(squirrel.Eq{"l.tenant_id": tenantID}).
		Where("l.ad_id IS NULL").
		OrderBy("l.created_at DESC").
		Limit(limit).
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

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead := &domain.Lead{}
		if err := rows.Scan(&lead.ID, &lead.TenantID, &lead.AccountID, &lead.ConversationID, &lead.Title, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *leadRepository) Attribute(ctx context.Context, leadID, adID string, method domain.LeadAttribution) (bool, error) {
	query, args, err := squirrel.
		Update("leads").
		Set("ad_id", adID).
		Set("attributed_by", method).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": leadID}).
		Where("ad_id IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
