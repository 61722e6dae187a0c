package domain

import (
	"fmt"
	"time"
)

// Metrics is the numeric payload shared by daily, hourly and breakdown facts.
type Metrics struct {
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Reach          int64   `json:"reach"`
	Results        int64   `json:"results"`
	MessagingTotal int64   `json:"messaging_total"`
	MessagingNew   int64   `json:"messaging_new"`
	PurchaseValue  float64 `json:"purchase_value"`
}

// Add accumulates another metrics row into the receiver. Upstream can return
// split rows for one ad/date under different campaign bucketing; those are
// summed before storage so the (account, ad, date) uniqueness holds.
func (m *Metrics) Add(o Metrics) {
	m.Spend += o.Spend
	m.Impressions += o.Impressions
	m.Clicks += o.Clicks
	m.Reach += o.Reach
	m.Results += o.Results
	m.MessagingTotal += o.MessagingTotal
	m.MessagingNew += o.MessagingNew
	m.PurchaseValue += o.PurchaseValue
}

// Insight is an ad-level daily performance fact. Exactly one row exists per
// (account_id, ad_id, date); campaign/ad-group linkage is carried for
// reporting but is not part of the key.
type Insight struct {
	ID         int64     `json:"id"`
	AccountID  string    `json:"account_id"`
	CampaignID string    `json:"campaign_id"`
	AdGroupID  string    `json:"ad_group_id"`
	AdID       string    `json:"ad_id"`
	Date       time.Time `json:"date"`
	Metrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the storage identity of the row.
func (i *Insight) Key() string {
	return fmt.Sprintf("%s|%s|%s", i.AccountID, i.AdID, i.Date.Format(time.DateOnly))
}

// HourlyInsight mirrors Insight with an advertiser-local hour 0-23.
type HourlyInsight struct {
	ID         int64     `json:"id"`
	AccountID  string    `json:"account_id"`
	CampaignID string    `json:"campaign_id"`
	AdGroupID  string    `json:"ad_group_id"`
	AdID       string    `json:"ad_id"`
	Date       time.Time `json:"date"`
	Hour       int       `json:"hour"`
	Metrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *HourlyInsight) Key() string {
	return fmt.Sprintf("%s|%s|%s|%d", i.AccountID, i.AdID, i.Date.Format(time.DateOnly), i.Hour)
}

// BreakdownDimension is an extra axis daily insights can be split on.
type BreakdownDimension string

const (
	BreakdownDevice    BreakdownDimension = "device_platform"
	BreakdownAgeGender BreakdownDimension = "age_gender"
	BreakdownRegion    BreakdownDimension = "region"
)

// InsightBreakdown is a child row of a daily Insight, keyed by the parent id
// plus the dimension value. Rows whose parent cannot be resolved are dropped.
type InsightBreakdown struct {
	ID        int64              `json:"id"`
	InsightID int64              `json:"insight_id"`
	Dimension BreakdownDimension `json:"dimension"`
	DimValue  string             `json:"dim_value"`
	Metrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
