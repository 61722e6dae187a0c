package domain

import "time"

// Ad is the leaf structural entity insights attach to.
type Ad struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	CampaignID      string       `json:"campaign_id"`
	AdGroupID       string       `json:"ad_group_id"`
	ExternalID      string       `json:"external_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
	EffectiveStatus EntityStatus `json:"effective_status"`
	CreativeID      *string      `json:"creative_id,omitempty"`
	StopTime        *time.Time   `json:"stop_time,omitempty"`
	UpdatedTime     *time.Time   `json:"updated_time,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// IsServing reports whether the ad is currently eligible for delivery: both
// statuses active and not past the ad group's stop time. Hourly insight sync
// only fans out over serving ads.
func (a *Ad) IsServing(now time.Time) bool {
	if a.Status != EntityStatusActive || a.EffectiveStatus != EntityStatusActive {
		return false
	}
	if a.StopTime != nil && a.StopTime.Before(now) {
		return false
	}
	return true
}

// Creative holds the rendered content of one or more ads. Deduplicated by
// external ID before ads link to it.
type Creative struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	ExternalID   string    `json:"external_id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
