package insightsync

import (
	"context"
	"time"

	"github.com/adsight/ads-sync-api/internal/domain"
)

// InsightSyncer pulls performance facts for one account and persists them
// idempotently. All passes sum duplicate upstream rows for the same storage
// key before writing.
type InsightSyncer interface {
	// SyncDaily covers the inclusive [start, end] date window at day grain.
	SyncDaily(ctx context.Context, account *domain.Account, start, end time.Time) (*domain.InsightSyncResult, error)

	// SyncHourly fans out over the account's currently serving ads for one
	// date, bounded by the configured concurrency width.
	SyncHourly(ctx context.Context, account *domain.Account, date time.Time) (*domain.InsightSyncResult, error)

	// SyncHourlyAd refreshes hour-grain rows for one explicitly targeted ad,
	// regardless of its serving state.
	SyncHourlyAd(ctx context.Context, account *domain.Account, adExternalID string, date time.Time) (*domain.InsightSyncResult, error)

	// SyncBreakdowns refreshes the dimensional children of the daily facts in
	// the window. Parent facts missing from storage are derived from the
	// fetched rows and written first.
	SyncBreakdowns(ctx context.Context, account *domain.Account, start, end time.Time) (*domain.InsightSyncResult, error)

	// PruneHourly removes hourly rows older than the retention window.
	PruneHourly(ctx context.Context) (int64, error)
}
