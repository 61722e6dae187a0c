package domain

import "time"

// BranchDailyStat is the derived branch-level rollup. Rows are fully
// recomputed from Insight facts for the accounts currently mapped to the
// branch and replaced per (branch_id, date, platform_code) whenever a
// contributing fact changes; they are never incrementally patched.
type BranchDailyStat struct {
	ID           int64        `json:"id"`
	BranchID     string       `json:"branch_id"`
	Date         time.Time    `json:"date"`
	PlatformCode PlatformCode `json:"platform_code"`
	Accounts     int          `json:"accounts"`
	Metrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
