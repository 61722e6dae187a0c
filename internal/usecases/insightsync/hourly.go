package insightsync

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/metrics"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

// SyncHourly fetches hour-grain rows per serving ad. The platform only
// exposes the hourly dimension per ad, so this is one request per ad, run
// under a bounded semaphore.
func (s *Service) SyncHourly(ctx context.Context, account *domain.Account, date time.Time) (*domain.InsightSyncResult, error) {
	result := &domain.InsightSyncResult{}

	ads, err := s.adRepository.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "loading ads")
	}

	now := time.Now().UTC()
	serving := make([]*domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.IsServing(now) {
			serving = append(serving, ad)
		}
	}

	width := s.cfg.Dispatcher.HourlyMaxConcurrent
	if width <= 0 {
		width = 1
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, width)
		allRows  []*domain.HourlyInsight
		failures int
	)

	for _, ad := range serving {
		wg.Add(1)
		sem <- struct{}{}

		go func(ad *domain.Ad) {
			defer wg.Done()
			defer func() { <-sem }()

			rows, err := s.fetchHourlyForAd(ctx, account, ad, date)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": account.ID,
					"ad_id":      ad.ExternalID,
					"error":      err.Error(),
				}).Warn("hourly fetch failed for ad")
				failures++
				return
			}
			allRows = append(allRows, rows...)
		}(ad)
	}

	wg.Wait()

	if failures > 0 && failures == len(serving) {
		return nil, errors.New("hourly fetch failed for every serving ad")
	}
	result.Skipped = failures

	accumulated := make(map[string]*domain.HourlyInsight)
	for _, row := range allRows {
		key := row.Key()
		if existing, ok := accumulated[key]; ok {
			existing.Metrics.Add(row.Metrics)
		} else {
			accumulated[key] = row
		}
	}

	hourly := make([]*domain.HourlyInsight, 0, len(accumulated))
	for _, row := range accumulated {
		hourly = append(hourly, row)
	}

	if err := s.hourlyRepository.UpsertBatch(ctx, hourly); err != nil {
		return nil, errors.Wrap(err, "saving hourly insights")
	}
	metrics.RowsUpserted.WithLabelValues("hourly_insights").Add(float64(len(hourly)))

	result.HourlyRows = len(hourly)
	if len(hourly) > 0 {
		result.DatesTouched = append(result.DatesTouched, utils.TruncateToDay(date))
	}

	return result, nil
}

// SyncHourlyAd targets a single ad serially. Unlike SyncHourly it does not
// filter on serving state, so a stopped or paused ad's hours can still be
// pulled on demand.
func (s *Service) SyncHourlyAd(ctx context.Context, account *domain.Account, adExternalID string, date time.Time) (*domain.InsightSyncResult, error) {
	result := &domain.InsightSyncResult{}

	ad, err := s.adRepository.GetByExternalID(ctx, account.ID, adExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "loading ad")
	}
	if ad == nil {
		if ad, err = s.entitySyncer.EnsureAd(ctx, account, adExternalID); err != nil {
			return nil, err
		}
		if ad == nil {
			return nil, errors.Errorf("ad %s could not be resolved", adExternalID)
		}
		result.SelfHealed++
	}

	rows, err := s.fetchHourlyForAd(ctx, account, ad, date)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching hourly rows for ad %s", adExternalID)
	}

	accumulated := make(map[string]*domain.HourlyInsight)
	for _, row := range rows {
		if existing, ok := accumulated[row.Key()]; ok {
			existing.Metrics.Add(row.Metrics)
		} else {
			accumulated[row.Key()] = row
		}
	}

	hourly := make([]*domain.HourlyInsight, 0, len(accumulated))
	for _, row := range accumulated {
		hourly = append(hourly, row)
	}

	if err := s.hourlyRepository.UpsertBatch(ctx, hourly); err != nil {
		return nil, errors.Wrap(err, "saving hourly insights")
	}
	metrics.RowsUpserted.WithLabelValues("hourly_insights").Add(float64(len(hourly)))

	result.HourlyRows = len(hourly)
	if len(hourly) > 0 {
		result.DatesTouched = append(result.DatesTouched, utils.TruncateToDay(date))
	}

	return result, nil
}

func (s *Service) fetchHourlyForAd(ctx context.Context, account *domain.Account, ad *domain.Ad, date time.Time) ([]*domain.HourlyInsight, error) {
	rows, err := s.client.GetInsights(ctx, account.ExternalID, account.AccessToken, metaclient.InsightRequest{
		Since:        date,
		Until:        date,
		Breakdowns:   []string{metadomain.BreakdownHourly},
		AdExternalID: ad.ExternalID,
	})
	if err != nil {
		return nil, err
	}

	hourly := make([]*domain.HourlyInsight, 0, len(rows))
	for _, row := range rows {
		hour, err := utils.ParseBreakdownHour(row.HourlyBreakdown)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      ad.ExternalID,
				"value":      row.HourlyBreakdown,
			}).Warn("skipping row with unparseable hour bucket")
			continue
		}

		rowDate, err := utils.ParseDate(row.DateStart)
		if err != nil {
			continue
		}

		hourly = append(hourly, &domain.HourlyInsight{
			AccountID:  account.ID,
			CampaignID: ad.CampaignID,
			AdGroupID:  ad.AdGroupID,
			AdID:       ad.ID,
			Date:       *rowDate,
			Hour:       hour,
			Metrics:    s.rowMetrics(&row),
		})
	}

	return hourly, nil
}
