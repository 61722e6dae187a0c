package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/internal/config"
)

func testClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.BaseURL = serverURL
	cfg.Meta.Version = "v19.0"
	cfg.Meta.PageSize = 100
	cfg.Meta.MaxAttempts = 3

	return &MetaClient{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		maxAttempts: cfg.Meta.MaxAttempts,
		backoffBase: time.Millisecond,
	}
}

func TestGetCampaignsFollowsPagination(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		assert.NotEmpty(t, r.URL.Query().Get("access_token"))

		if call == 1 {
			assert.Empty(t, r.URL.Query().Get("after"))
			w.Write([]byte(`{"data":[{"id":"c1","name":"first"}],"paging":{"cursors":{"after":"cur1"}}}`))
			return
		}

		assert.Equal(t, "cur1", r.URL.Query().Get("after"))
		w.Write([]byte(`{"data":[{"id":"c2","name":"second"}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	campaigns, err := client.GetCampaigns(context.Background(), "123", "token", nil)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c2", campaigns[1].ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestGetCampaignsRetriesTransientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"too many calls","type":"ApplicationError","code":17}}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"c1"}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	campaigns, err := client.GetCampaigns(context.Background(), "123", "token", nil)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestGetCampaignsGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"too many calls","type":"ApplicationError","code":4}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.GetCampaigns(context.Background(), "123", "token", nil)
	require.Error(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestAuthErrorsAreNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"token expired","type":"OAuthException","code":190}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.GetCampaigns(context.Background(), "123", "token", nil)
	require.Error(t, err)

	var authErr *metadomain.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestGetInsightsTargetsSingleAd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/ad9/insights")
		assert.Equal(t, "ad", r.URL.Query().Get("level"))
		w.Write([]byte(`{"data":[{"ad_id":"ad9","spend":"10.5","impressions":"100","date_start":"2026-08-01","date_stop":"2026-08-01"}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	rows, err := client.GetInsights(context.Background(), "123", "token", InsightRequest{
		Since:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Until:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		AdExternalID: "ad9",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ad9", rows[0].AdID)
	assert.Equal(t, 10.5, rows[0].SpendValue())
}

func TestGetConversationReferral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"m1"},{"id":"m2","referral":{"ad_id":"ad7","source_id":"src","headline":"Promo"}}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	referral, err := client.GetConversationReferral(context.Background(), "conv1", "token")
	require.NoError(t, err)
	require.NotNil(t, referral)
	assert.Equal(t, "ad7", referral.AdID)
	assert.Equal(t, "Promo", referral.Headline)
}
