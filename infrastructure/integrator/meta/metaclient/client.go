package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fetches logical collections from the upstream ads platform. Each
// call follows pagination cursors until the collection is exhausted.
type Client interface {
	GetAdAccount(ctx context.Context, accountExternalID, token string) (*metadomain.AdAccount, error)
	GetCampaigns(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.Campaign, error)
	GetAdSets(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.AdSet, error)
	GetAds(ctx context.Context, accountExternalID, token string, since *time.Time) ([]metadomain.Ad, error)
	GetAdByID(ctx context.Context, adExternalID, token string) (*metadomain.Ad, error)
	GetInsights(ctx context.Context, accountExternalID, token string, req InsightRequest) ([]metadomain.InsightRow, error)
	GetConversationReferral(ctx context.Context, conversationID, token string) (*metadomain.Referral, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client

	maxAttempts int
	backoffBase time.Duration
	pageDelay   time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		maxAttempts: cfg.Meta.MaxAttempts,
		backoffBase: time.Second,
		pageDelay:   time.Duration(cfg.Meta.PageDelayMillis) * time.Millisecond,
	}
}

type listEnvelope struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// fetchAllPages requests baseURL with params and follows the cursor chain,
// concatenating every page's data. A small delay between pages avoids
// bursting the platform's rate limits.
func (c *MetaClient) fetchAllPages(ctx context.Context, baseURL string, params url.Values, token string) ([]jsoniter.RawMessage, error) {
	params.Set("access_token", token)

	all := make([]jsoniter.RawMessage, 0)
	requestURL := baseURL + "?" + params.Encode()

	for {
		body, err := c.doWithRetry(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		var page listEnvelope
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, errors.Wrap(err, "decoding platform response")
		}

		all = append(all, page.Data...)

		if !page.Paging.HasNext() || len(page.Data) == 0 {
			break
		}

		if page.Paging.Cursors.After != "" {
			params.Set("after", page.Paging.Cursors.After)
			requestURL = baseURL + "?" + params.Encode()
		} else {
			// Some endpoints only return a prebuilt next link.
			requestURL = page.Paging.Next
		}

		if c.pageDelay > 0 {
			time.Sleep(c.pageDelay)
		}
	}

	return all, nil
}

// fetchOne requests a single object endpoint.
func (c *MetaClient) fetchOne(ctx context.Context, baseURL string, params url.Values, token string) ([]byte, error) {
	params.Set("access_token", token)
	return c.doWithRetry(ctx, baseURL+"?"+params.Encode())
}

// doWithRetry performs the request with exponential backoff (2^n seconds)
// capped at maxAttempts. Auth errors are never retried.
func (c *MetaClient) doWithRetry(ctx context.Context, requestURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			metrics.UpstreamRetries.Inc()
			backoff := c.backoffBase * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.do(ctx, requestURL)
		if err == nil {
			return body, nil
		}

		if !metadomain.IsTransient(err) {
			return nil, err
		}

		lastErr = err
		logrus.WithError(err).WithField("attempt", attempt+1).Warn("transient platform error, backing off")
	}

	return nil, errors.Wrapf(lastErr, "platform request failed after %d attempts", c.maxAttempts)
}

func (c *MetaClient) do(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating platform request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling platform")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading platform response")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != 0 {
		if errResp.IsAuthError() {
			return nil, &metadomain.AuthError{Message: errResp.Error.Message, Code: errResp.Error.Code}
		}
		if errResp.IsRateLimited() {
			return nil, &metadomain.RateLimitError{Message: errResp.Error.Message, Code: errResp.Error.Code}
		}
		return nil, fmt.Errorf("platform error (code %d): %s", errResp.Error.Code, errResp.Error.Message)
	}

	return nil, fmt.Errorf("platform returned status %d", resp.StatusCode)
}
