package metadomain

// AdAccount is the raw account shape from the platform. Amounts arrive as
// strings in the account's minor currency units.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	Timezone      string `json:"timezone_name"`
	Balance       string `json:"balance"`
}

// Account status values on the platform: 1 active, 2 disabled, 3 unsettled,
// 101 closed.
const (
	AccountStatusCodeActive   = 1
	AccountStatusCodeDisabled = 2
)

// Referral is the ad referral metadata attached to an inbound conversation.
type Referral struct {
	AdID      string `json:"ad_id"`
	SourceID  string `json:"source_id"`
	SourceURL string `json:"source_url"`
	Headline  string `json:"headline"`
}
