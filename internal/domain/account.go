package domain

import (
	"time"
)

type AccountStatus string

const (
	AccountStatusActive       AccountStatus = "ACTIVE"
	AccountStatusInactive     AccountStatus = "INACTIVE"
	AccountStatusDisconnected AccountStatus = "DISCONNECTED"
)

// PlatformCode identifies the upstream ads platform an account lives on.
type PlatformCode string

const (
	PlatformFacebook PlatformCode = "facebook"
)

// Identity is the credential owner of one or more accounts. Tokens are
// provisioned by the onboarding collaborator; this service only reads them.
type Identity struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	AccessToken string     `json:"-"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

// Account is a connected advertiser account on the upstream platform.
// On disconnect the row is retained (insights survive) and BranchID is nulled.
type Account struct {
	ID             string        `json:"id"`
	ExternalID     string        `json:"external_id"`
	TenantID       string        `json:"tenant_id"`
	IdentityID     string        `json:"identity_id"`
	Platform       PlatformCode  `json:"platform"`
	Name           string        `json:"name"`
	Currency       string        `json:"currency"`
	Timezone       string        `json:"timezone"`
	Status         AccountStatus `json:"status"`
	Balance        float64       `json:"balance"`
	BranchID       *string       `json:"branch_id,omitempty"`
	LastSyncedAt   *time.Time    `json:"last_synced_at,omitempty"`
	DisconnectedAt *time.Time    `json:"disconnected_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	// AccessToken is joined in from the owning identity when loading
	// accounts for a sync pass. Never serialized.
	AccessToken string `json:"-"`
}

func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
