package entitysync

import (
	"context"

	"github.com/adsight/ads-sync-api/internal/domain"
)

// EntitySyncer keeps the structural mirror (campaigns, ad groups, ads,
// creatives) of one account current.
type EntitySyncer interface {
	// RefreshAccountState pulls the account object itself and updates the
	// mutable platform-owned fields. An expired token marks the account
	// disconnected without deleting anything.
	RefreshAccountState(ctx context.Context, account *domain.Account) error

	// SyncAccount runs a structural pass. When the account has synced before,
	// only entities updated since the last pass are fetched; a full pass
	// ignores that watermark and refetches everything.
	SyncAccount(ctx context.Context, account *domain.Account, full bool) (*domain.EntitySyncResult, error)

	// EnsureAd resolves an ad by its external ID, fetching it (with its
	// lineage) inline when the local mirror has not seen it yet.
	EnsureAd(ctx context.Context, account *domain.Account, adExternalID string) (*domain.Ad, error)
}
