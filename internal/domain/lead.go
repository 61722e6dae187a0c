package domain

import "time"

// LeadAttribution records how a lead was matched back to an ad.
type LeadAttribution string

const (
	LeadAttributedByReferral LeadAttribution = "referral"
	LeadAttributedByCreative LeadAttribution = "creative_title"
)

// Lead is an inbound conversation captured by the messaging collaborator.
// The backfill only ever touches leads with no AdID yet.
type Lead struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	AccountID      *string         `json:"account_id,omitempty"`
	ConversationID string          `json:"conversation_id"`
	Title          string          `json:"title"`
	AdID           *string         `json:"ad_id,omitempty"`
	AttributedBy   LeadAttribution `json:"attributed_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
