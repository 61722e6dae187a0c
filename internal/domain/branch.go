package domain

import "time"

// Branch is a tenant-defined grouping of accounts used for rollup reporting.
// Keyword drives the auto-assignment of new accounts: the first branch whose
// keyword appears (case-insensitive) in the account name wins.
type Branch struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
