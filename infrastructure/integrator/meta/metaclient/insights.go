package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
)

const insightFields = "account_id,campaign_id,campaign_name,adset_id,ad_id,ad_name,spend,impressions,clicks,reach,actions,action_values,date_start,date_stop"

// InsightRequest describes one insights query. When AdExternalID is set the
// query targets a single ad instead of the whole account.
type InsightRequest struct {
	Since        time.Time
	Until        time.Time
	Breakdowns   []string
	AdExternalID string
}

func (c *MetaClient) GetInsights(ctx context.Context, accountExternalID, token string, req InsightRequest) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("fields", insightFields)
	params.Set("time_increment", "1")
	params.Set("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		req.Since.Format(time.DateOnly), req.Until.Format(time.DateOnly)))

	if len(req.Breakdowns) > 0 {
		params.Set("breakdowns", strings.Join(req.Breakdowns, ","))
	}

	path := "act_" + accountExternalID + "/insights"
	if req.AdExternalID != "" {
		path = req.AdExternalID + "/insights"
	}

	pages, err := c.fetchAllPages(ctx, c.apiURL(path), params, token)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching insights for account %s", accountExternalID)
	}

	rows := make([]metadomain.InsightRow, 0, len(pages))
	for _, raw := range pages {
		var row metadomain.InsightRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, errors.Wrap(err, "decoding insight row")
		}
		rows = append(rows, row)
	}

	return rows, nil
}
