package notifying

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notifier publishes a dispatch summary to the configured webhook. Delivery
// is best effort: a failed notification never fails the dispatch.
type Notifier interface {
	NotifyDispatchResult(ctx context.Context, result *domain.DispatchResult)
}

type WebhookNotifier struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewWebhookNotifier(cfg *config.Config) Notifier {
	return &WebhookNotifier{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Text   string                 `json:"text"`
	Result *domain.DispatchResult `json:"result"`
}

func (n *WebhookNotifier) NotifyDispatchResult(ctx context.Context, result *domain.DispatchResult) {
	if !n.cfg.Notification.Enabled || n.cfg.Notification.WebhookURL == "" {
		return
	}

	body, err := json.Marshal(webhookPayload{
		Text:   FormatSummary(result),
		Result: result,
	})
	if err != nil {
		logrus.WithError(err).Warn("could not encode dispatch notification")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Notification.WebhookURL, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Warn("could not build dispatch notification request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("dispatch notification delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithField("status", resp.StatusCode).Warn("dispatch notification rejected by webhook")
	}
}

// FormatSummary renders the human-readable digest sent to subscribers.
func FormatSummary(result *domain.DispatchResult) string {
	var b strings.Builder

	duration := result.CompletedAt.Sub(result.StartedAt).Round(time.Second)
	fmt.Fprintf(&b, "sync dispatch for hour %02d finished in %s\n", result.Hour, duration)

	for _, tenant := range result.Tenants {
		fmt.Fprintf(&b, "- tenant %s: %d accounts, %d daily rows, %d hourly rows, %d leads attributed",
			tenant.TenantID, tenant.Accounts, tenant.Insights.Rows, tenant.Insights.HourlyRows, tenant.LeadsAttributed)
		if len(tenant.Errors) > 0 {
			fmt.Fprintf(&b, ", %d errors", len(tenant.Errors))
		}
		b.WriteString("\n")
	}

	if n := result.ErrorCount(); n > 0 {
		fmt.Fprintf(&b, "%d failures total, see logs\n", n)
	}

	return b.String()
}
