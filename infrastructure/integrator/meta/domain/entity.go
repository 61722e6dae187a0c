package metadomain

import "time"

// Timestamp format used by the platform for entity timestamps.
const TimeLayout = "2006-01-02T15:04:05-0700"

// ParseTime parses a platform timestamp, returning nil for empty values.
func ParseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

// Campaign is the raw campaign shape. Budgets are strings in minor units.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Objective       string `json:"objective"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	StartTime       string `json:"start_time"`
	StopTime        string `json:"stop_time"`
	UpdatedTime     string `json:"updated_time"`
}

// AdSet is the raw ad group shape.
type AdSet struct {
	ID              string `json:"id"`
	CampaignID      string `json:"campaign_id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	UpdatedTime     string `json:"updated_time"`
}

// Creative is the raw creative shape embedded in ads.
type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Ad is the raw ad shape, with its creative embedded.
type Ad struct {
	ID              string    `json:"id"`
	AdsetID         string    `json:"adset_id"`
	CampaignID      string    `json:"campaign_id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	Creative        *Creative `json:"creative,omitempty"`
	UpdatedTime     string    `json:"updated_time"`
}
