package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
)

const (
	campaignFields = "id,name,objective,status,effective_status,daily_budget,lifetime_budget,start_time,stop_time,updated_time"
	adSetFields    = "id,campaign_id,name,status,effective_status,daily_budget,start_time,end_time,updated_time"
	adFields       = "id,adset_id,campaign_id,name,status,effective_status,updated_time,creative{id,name,title,body,thumbnail_url}"
	accountFields  = "id,account_id,name,account_status,currency,timezone_name,balance"
)

func (c *MetaClient) apiURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.Meta.BaseURL, c.cfg.Meta.Version, path)
}

func (c *MetaClient) listParams(fields string) url.Values {
	params := url.Values{}
	params.Set("fields", fields)
	params.Set("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	return params
}

// sinceFilter restricts a listing to entities updated after the given time.
func sinceFilter(params url.Values, since *time.Time) {
	if since == nil {
		return
	}
	filter := fmt.Sprintf(`[{"field":"updated_time","operator":"GREATER_THAN","value":%d}]`, since.Unix())
	params.Set("filtering", filter)
}

func (c *MetaClient) GetAdAccount(ctx context.Context, accountExternalID, token string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", accountFields)

	body, err := c.fetchOne(ctx, c.apiURL("act_"+accountExternalID), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching account %s", accountExternalID)
	}

	account := &metadomain.AdAccount{}
	if err := json.Unmarshal(body, account); err != nil {
		return nil, errors.Wrap(err, "decoding account")
	}

	return account, nil
}

func (c *MetaClient) GetCampaigns(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.Campaign, error) {
	params := c.listParams(campaignFields)
	sinceFilter(params, since)

	pages, err := c.fetchAllPages(ctx, c.apiURL("act_"+accountExternalID+"/campaigns"), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching campaigns for account %s", accountExternalID)
	}

	campaigns := make([]metadomain.Campaign, 0, len(pages))
	for _, raw := range pages {
		var campaign metadomain.Campaign
		if err := json.Unmarshal(raw, &campaign); err != nil {
			return nil, errors.Wrap(err, "decoding campaign")
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (c *MetaClient) GetAdSets(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.AdSet, error) {
	params := c.listParams(adSetFields)
	sinceFilter(params, since)

	pages, err := c.fetchAllPages(ctx, c.apiURL("act_"+accountExternalID+"/adsets"), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching ad sets for account %s", accountExternalID)
	}

	adSets := make([]metadomain.AdSet, 0, len(pages))
	for _, raw := range pages {
		var adSet metadomain.AdSet
		if err := json.Unmarshal(raw, &adSet); err != nil {
			return nil, errors.Wrap(err, "decoding ad set")
		}
		adSets = append(adSets, adSet)
	}

	return adSets, nil
}

func (c *MetaClient) GetAds(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.Ad, error) {
	params := c.listParams(adFields)
	sinceFilter(params, since)

	pages, err := c.fetchAllPages(ctx, c.apiURL("act_"+accountExternalID+"/ads"), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching ads for account %s", accountExternalID)
	}

	ads := make([]metadomain.Ad, 0, len(pages))
	for _, raw := range pages {
		var ad metadomain.Ad
		if err := json.Unmarshal(raw, &ad); err != nil {
			return nil, errors.Wrap(err, "decoding ad")
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

// GetAdByID fetches a single ad directly, used when an insights row references
// an ad the entity sync has not seen yet.
func (c *MetaClient) GetAdByID(ctx context.Context, adExternalID, token string) (*metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)

	body, err := c.fetchOne(ctx, c.apiURL(adExternalID), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching ad %s", adExternalID)
	}

	ad := &metadomain.Ad{}
	if err := json.Unmarshal(body, ad); err != nil {
		return nil, errors.Wrap(err, "decoding ad")
	}

	return ad, nil
}
