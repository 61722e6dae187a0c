package domain

import "time"

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusPaused   EntityStatus = "PAUSED"
	EntityStatusArchived EntityStatus = "ARCHIVED"
	EntityStatusDeleted  EntityStatus = "DELETED"
)

// Campaign is the top structural entity under an account. Upserted every
// entity-sync pass keyed by (account_id, external_id); the internal ID is
// preserved across passes so child foreign keys stay stable. Archived or
// deleted upstream campaigns keep their row, only the status moves.
type Campaign struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	ExternalID      string       `json:"external_id"`
	Name            string       `json:"name"`
	Objective       string       `json:"objective"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	DailyBudget     float64      `json:"daily_budget"`
	LifetimeBudget  float64      `json:"lifetime_budget"`
	StartTime       *time.Time   `json:"start_time,omitempty"`
	StopTime        *time.Time   `json:"stop_time,omitempty"`
	UpdatedTime     *time.Time   `json:"updated_time,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// AdGroup sits between a campaign and its ads. Same lifecycle rules as
// Campaign.
type AdGroup struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	CampaignID      string       `json:"campaign_id"`
	ExternalID      string       `json:"external_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	DailyBudget     float64      `json:"daily_budget"`
	StartTime       *time.Time   `json:"start_time,omitempty"`
	StopTime        *time.Time   `json:"stop_time,omitempty"`
	UpdatedTime     *time.Time   `json:"updated_time,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
