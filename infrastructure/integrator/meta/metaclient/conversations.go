package metaclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
)

// GetConversationReferral looks up the ad referral attached to the first
// message of a conversation. Returns nil when the conversation did not start
// from an ad.
func (c *MetaClient) GetConversationReferral(ctx context.Context, conversationID, token string) (*metadomain.Referral, error) {
	params := url.Values{}
	params.Set("fields", "referral")
	params.Set("limit", "5")

	pages, err := c.fetchAllPages(ctx, c.apiURL(conversationID+"/messages"), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching messages for conversation %s", conversationID)
	}

	for _, raw := range pages {
		var message struct {
			Referral *metadomain.Referral `json:"referral"`
		}
		if err := json.Unmarshal(raw, &message); err != nil {
			return nil, errors.Wrap(err, "decoding message")
		}
		if message.Referral != nil && message.Referral.AdID != "" {
			return message.Referral, nil
		}
	}

	return nil, nil
}
