package domain

import (
	"slices"
	"time"
)

// SyncType names one schedulable kind of synchronization work.
type SyncType string

const (
	SyncTypeFull      SyncType = "full"
	SyncTypeEntity    SyncType = "entity"
	SyncTypeAd        SyncType = "ad"
	SyncTypeInsight   SyncType = "insight"
	SyncTypeDaily     SyncType = "daily"
	SyncTypeHourly    SyncType = "hourly"
	SyncTypeBreakdown SyncType = "breakdown"
	SyncTypeLead      SyncType = "lead"
)

// CronSetting drives dispatch eligibility for one (tenant, syncType) pair.
// Loaded fresh on every tick; never cached in process.
type CronSetting struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	SyncType     SyncType  `json:"sync_type"`
	AllowedHours []int     `json:"allowed_hours"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MatchesHour reports whether the setting is due at the given local hour.
// An empty AllowedHours list means every hour.
func (c *CronSetting) MatchesHour(hour int) bool {
	if len(c.AllowedHours) == 0 {
		return true
	}
	return slices.Contains(c.AllowedHours, hour)
}

// SyncFlags is the expanded work plan for one tenant on one tick.
type SyncFlags struct {
	Structural    bool
	Ads           bool
	DailyInsight  bool
	HourlyInsight bool
	Breakdowns    bool
	Leads         bool
}

// Merge unions another flag set into the receiver.
func (f *SyncFlags) Merge(o SyncFlags) {
	f.Structural = f.Structural || o.Structural
	f.Ads = f.Ads || o.Ads
	f.DailyInsight = f.DailyInsight || o.DailyInsight
	f.HourlyInsight = f.HourlyInsight || o.HourlyInsight
	f.Breakdowns = f.Breakdowns || o.Breakdowns
	f.Leads = f.Leads || o.Leads
}

// Any reports whether at least one kind of work is planned.
func (f SyncFlags) Any() bool {
	return f.Structural || f.Ads || f.DailyInsight || f.HourlyInsight || f.Breakdowns || f.Leads
}

// FlagsForType maps a sync type to its work plan. "full" implies everything,
// "insight" only the daily and hourly fact passes.
func FlagsForType(t SyncType) SyncFlags {
	switch t {
	case SyncTypeFull:
		return SyncFlags{
			Structural:    true,
			Ads:           true,
			DailyInsight:  true,
			HourlyInsight: true,
			Breakdowns:    true,
			Leads:         true,
		}
	case SyncTypeEntity:
		return SyncFlags{Structural: true}
	case SyncTypeAd:
		return SyncFlags{Ads: true}
	case SyncTypeInsight:
		return SyncFlags{DailyInsight: true, HourlyInsight: true}
	case SyncTypeDaily:
		return SyncFlags{DailyInsight: true}
	case SyncTypeHourly:
		return SyncFlags{HourlyInsight: true}
	case SyncTypeBreakdown:
		return SyncFlags{Breakdowns: true}
	case SyncTypeLead:
		return SyncFlags{Leads: true}
	}
	return SyncFlags{}
}
