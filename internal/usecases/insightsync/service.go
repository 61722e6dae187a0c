package insightsync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/internal/usecases/entitysync"
	"github.com/adsight/ads-sync-api/pkg/metrics"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

type Service struct {
	cfg                 *config.Config
	client              metaclient.Client
	entitySyncer        entitysync.EntitySyncer
	adRepository        repository.AdRepository
	insightRepository   repository.InsightRepository
	hourlyRepository    repository.HourlyInsightRepository
	breakdownRepository repository.InsightBreakdownRepository
}

func NewService(
	cfg *config.Config,
	client metaclient.Client,
	entitySyncer entitysync.EntitySyncer,
	adRepo repository.AdRepository,
	insightRepo repository.InsightRepository,
	hourlyRepo repository.HourlyInsightRepository,
	breakdownRepo repository.InsightBreakdownRepository,
) InsightSyncer {
	return &Service{
		cfg:                 cfg,
		client:              client,
		entitySyncer:        entitySyncer,
		adRepository:        adRepo,
		insightRepository:   insightRepo,
		hourlyRepository:    hourlyRepo,
		breakdownRepository: breakdownRepo,
	}
}

func (s *Service) SyncDaily(ctx context.Context, account *domain.Account, start, end time.Time) (*domain.InsightSyncResult, error) {
	result := &domain.InsightSyncResult{}

	rows, err := s.client.GetInsights(ctx, account.ExternalID, account.AccessToken, metaclient.InsightRequest{
		Since: start,
		Until: end,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetching daily insights")
	}

	adsByExternalID, err := s.loadAdIndex(ctx, account)
	if err != nil {
		return nil, err
	}

	// Upstream can split one (ad, date) across rows; sum them before the
	// upsert so the storage key stays unique.
	accumulated := make(map[string]*domain.Insight)
	datesTouched := make(map[time.Time]bool)

	for _, row := range rows {
		ad, err := s.resolveAd(ctx, account, row.AdID, adsByExternalID, result)
		if err != nil {
			return nil, err
		}
		if ad == nil {
			result.Skipped++
			continue
		}

		date, err := utils.ParseDate(row.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      row.AdID,
				"date":       row.DateStart,
			}).Warn("skipping insight row with unparseable date")
			result.Skipped++
			continue
		}

		insight := &domain.Insight{
			AccountID:  account.ID,
			CampaignID: ad.CampaignID,
			AdGroupID:  ad.AdGroupID,
			AdID:       ad.ID,
			Date:       *date,
			Metrics:    s.rowMetrics(&row),
		}

		key := insight.Key()
		if existing, ok := accumulated[key]; ok {
			existing.Metrics.Add(insight.Metrics)
		} else {
			accumulated[key] = insight
		}
		datesTouched[*date] = true
	}

	insights := make([]*domain.Insight, 0, len(accumulated))
	for _, insight := range accumulated {
		insights = append(insights, insight)
	}

	if _, err := s.insightRepository.UpsertBatch(ctx, insights); err != nil {
		return nil, errors.Wrap(err, "saving daily insights")
	}
	metrics.RowsUpserted.WithLabelValues("insights").Add(float64(len(insights)))

	result.Rows = len(insights)
	for date := range datesTouched {
		result.DatesTouched = append(result.DatesTouched, date)
	}

	return result, nil
}

// resolveAd maps an external ad ID to the local mirror, self-healing through
// an inline fetch when the ad is unknown.
func (s *Service) resolveAd(ctx context.Context, account *domain.Account, adExternalID string, index map[string]*domain.Ad, result *domain.InsightSyncResult) (*domain.Ad, error) {
	if ad, ok := index[adExternalID]; ok {
		return ad, nil
	}

	ad, err := s.entitySyncer.EnsureAd(ctx, account, adExternalID)
	if err != nil {
		if errors.Is(err, entitysync.ErrAccountDisconnected) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"ad_id":      adExternalID,
			"error":      err.Error(),
		}).Warn("could not self-heal unknown ad")
		return nil, nil
	}
	if ad == nil {
		return nil, nil
	}

	index[adExternalID] = ad
	result.SelfHealed++
	return ad, nil
}

func (s *Service) loadAdIndex(ctx context.Context, account *domain.Account) (map[string]*domain.Ad, error) {
	ads, err := s.adRepository.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "loading ads")
	}

	index := make(map[string]*domain.Ad, len(ads))
	for _, ad := range ads {
		index[ad.ExternalID] = ad
	}
	return index, nil
}

func (s *Service) rowMetrics(row *metadomain.InsightRow) domain.Metrics {
	return domain.Metrics{
		Spend:          row.SpendValue(),
		Impressions:    row.ImpressionsValue(),
		Clicks:         row.ClicksValue(),
		Reach:          row.ReachValue(),
		Results:        row.ExtractResults(s.cfg.Insights.ResultsActionPriority),
		MessagingTotal: row.ActionValue(metadomain.ActionMessagingTotal),
		MessagingNew:   row.ActionValue(metadomain.ActionMessagingNew),
		PurchaseValue:  row.MonetaryActionValue(metadomain.ActionPurchase),
	}
}

func (s *Service) PruneHourly(ctx context.Context) (int64, error) {
	return s.hourlyRepository.DeleteOlderThan(ctx, s.cfg.Insights.HourlyRetentionDays)
}
