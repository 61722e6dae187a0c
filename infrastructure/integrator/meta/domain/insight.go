package metadomain

import (
	"strconv"
)

// Action is one (action_type, value) pair from the insights payload. Values
// arrive as strings.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

func (a Action) Int() int64 {
	v, err := strconv.ParseInt(a.Value, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(a.Value, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return v
}

func (a Action) Float() float64 {
	v, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0
	}
	return v
}

// InsightRow is one raw ad-level insights row. Numeric fields are strings.
// HourlyBreakdown is set only when the hourly dimension is requested;
// DevicePlatform/Age/Gender/Region only for their breakdown dimension.
type InsightRow struct {
	AccountID       string   `json:"account_id"`
	CampaignID      string   `json:"campaign_id"`
	CampaignName    string   `json:"campaign_name"`
	AdsetID         string   `json:"adset_id"`
	AdID            string   `json:"ad_id"`
	AdName          string   `json:"ad_name"`
	DateStart       string   `json:"date_start"`
	DateStop        string   `json:"date_stop"`
	Spend           string   `json:"spend"`
	Impressions     string   `json:"impressions"`
	Clicks          string   `json:"clicks"`
	Reach           string   `json:"reach"`
	Actions         []Action `json:"actions"`
	ActionValues    []Action `json:"action_values"`
	HourlyBreakdown string   `json:"hourly_stats_aggregated_by_advertiser_time_zone,omitempty"`
	DevicePlatform  string   `json:"device_platform,omitempty"`
	Age             string   `json:"age,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Region          string   `json:"region,omitempty"`
}

func (r *InsightRow) SpendValue() float64 {
	v, _ := strconv.ParseFloat(r.Spend, 64)
	return v
}

func (r *InsightRow) ImpressionsValue() int64 {
	v, _ := strconv.ParseInt(r.Impressions, 10, 64)
	return v
}

func (r *InsightRow) ClicksValue() int64 {
	v, _ := strconv.ParseInt(r.Clicks, 10, 64)
	return v
}

func (r *InsightRow) ReachValue() int64 {
	v, _ := strconv.ParseInt(r.Reach, 10, 64)
	return v
}

// ActionValue returns the value for one action type, or 0.
func (r *InsightRow) ActionValue(actionType string) int64 {
	for _, action := range r.Actions {
		if action.ActionType == actionType {
			return action.Int()
		}
	}
	return 0
}

// MonetaryActionValue returns the monetary value for one action type, or 0.
func (r *InsightRow) MonetaryActionValue(actionType string) float64 {
	for _, action := range r.ActionValues {
		if action.ActionType == actionType {
			return action.Float()
		}
	}
	return 0
}

// ExtractResults walks the priority-ordered action types and returns the
// first matching value. First match wins; values are never summed across
// types, since conversion definitions overlap and summing double-counts.
func (r *InsightRow) ExtractResults(priority []string) int64 {
	for _, actionType := range priority {
		for _, action := range r.Actions {
			if action.ActionType == actionType {
				return action.Int()
			}
		}
	}
	return 0
}

// Breakdown parameter values accepted by the insights endpoint.
const (
	BreakdownHourly         = "hourly_stats_aggregated_by_advertiser_time_zone"
	BreakdownDevicePlatform = "device_platform"
	BreakdownAge            = "age"
	BreakdownGender         = "gender"
	BreakdownRegion         = "region"
)

// Well-known action types used for the messaging and purchase metrics.
const (
	ActionMessagingTotal = "onsite_conversion.total_messaging_connection"
	ActionMessagingNew   = "onsite_conversion.messaging_conversation_started_7d"
	ActionPurchase       = "omni_purchase"
)
