package domain

import "time"

// DispatchOptions parameterizes one dispatch tick. Zero value means: current
// hour, default lookback window, every due sync type, every tenant.
type DispatchOptions struct {
	Hour      *int       `json:"hour,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Types     []SyncType `json:"types,omitempty"`
	TenantID  string     `json:"tenant_id,omitempty"`
	Force     bool       `json:"force"`
}

// SyncError is one captured per-account failure. Failures never abort
// sibling accounts or the tenant's aggregation step.
type SyncError struct {
	TenantID  string `json:"tenant_id"`
	AccountID string `json:"account_id,omitempty"`
	Stage     string `json:"stage"`
	Message   string `json:"message"`
}

// EntitySyncResult counts one account's structural pass.
type EntitySyncResult struct {
	Campaigns int `json:"campaigns"`
	AdGroups  int `json:"ad_groups"`
	Ads       int `json:"ads"`
	Creatives int `json:"creatives"`
	Orphans   int `json:"orphans"`
}

func (r *EntitySyncResult) Merge(o *EntitySyncResult) {
	if o == nil {
		return
	}
	r.Campaigns += o.Campaigns
	r.AdGroups += o.AdGroups
	r.Ads += o.Ads
	r.Creatives += o.Creatives
	r.Orphans += o.Orphans
}

// InsightSyncResult counts one account's fact pass and reports the branch
// dates touched, so aggregation can run once per distinct branch afterwards.
type InsightSyncResult struct {
	Rows         int         `json:"rows"`
	HourlyRows   int         `json:"hourly_rows"`
	Breakdowns   int         `json:"breakdowns"`
	SelfHealed   int         `json:"self_healed"`
	Skipped      int         `json:"skipped"`
	DatesTouched []time.Time `json:"dates_touched,omitempty"`
}

func (r *InsightSyncResult) Merge(o *InsightSyncResult) {
	if o == nil {
		return
	}
	r.Rows += o.Rows
	r.HourlyRows += o.HourlyRows
	r.Breakdowns += o.Breakdowns
	r.SelfHealed += o.SelfHealed
	r.Skipped += o.Skipped
	r.DatesTouched = append(r.DatesTouched, o.DatesTouched...)
}

// TenantSyncResult aggregates one tenant's tick.
type TenantSyncResult struct {
	TenantID        string            `json:"tenant_id"`
	Flags           SyncFlags         `json:"-"`
	Accounts        int               `json:"accounts"`
	Entities        EntitySyncResult  `json:"entities"`
	Insights        InsightSyncResult `json:"insights"`
	BranchesTouched []string          `json:"branches_touched,omitempty"`
	LeadsAttributed int               `json:"leads_attributed"`
	Errors          []SyncError       `json:"errors,omitempty"`
}

// DispatchResult is the dispatch-wide outcome returned by a manual trigger
// and summarized to notification subscribers.
type DispatchResult struct {
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt time.Time           `json:"completed_at"`
	Hour        int                 `json:"hour"`
	Forced      bool                `json:"forced"`
	Tenants     []*TenantSyncResult `json:"tenants"`
	Errors      []SyncError         `json:"errors,omitempty"`
}

// ErrorCount returns the number of per-account and per-tenant failures.
func (r *DispatchResult) ErrorCount() int {
	n := len(r.Errors)
	for _, t := range r.Tenants {
		n += len(t.Errors)
	}
	return n
}
