package insightsync

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/metrics"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

// breakdownRequests maps each stored dimension to the platform breakdown
// parameters that produce it.
var breakdownRequests = map[domain.BreakdownDimension][]string{
	domain.BreakdownDevice:    {metadomain.BreakdownDevicePlatform},
	domain.BreakdownAgeGender: {metadomain.BreakdownAge, metadomain.BreakdownGender},
	domain.BreakdownRegion:    {metadomain.BreakdownRegion},
}

// SyncBreakdowns refreshes dimensional children for the window. Parent daily
// facts missing from storage are summed up from the fetched rows and written
// first, so a breakdown-only pass never loses data for a date the daily pass
// has not covered yet. Every dimension partitions the same daily totals, so
// a missing parent is derived from a single dimension's rows only.
func (s *Service) SyncBreakdowns(ctx context.Context, account *domain.Account, start, end time.Time) (*domain.InsightSyncResult, error) {
	result := &domain.InsightSyncResult{}

	parentIDs, err := s.insightRepository.ListKeyMap(ctx, account.ID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "loading parent insight ids")
	}

	adsByExternalID, err := s.loadAdIndex(ctx, account)
	if err != nil {
		return nil, err
	}

	parents := make(map[string]*domain.Insight)
	parentSource := make(map[string]domain.BreakdownDimension)
	children := make(map[string]*domain.InsightBreakdown)
	childParent := make(map[string]string)

	for dimension, params := range breakdownRequests {
		rows, err := s.client.GetInsights(ctx, account.ExternalID, account.AccessToken, metaclient.InsightRequest{
			Since:      start,
			Until:      end,
			Breakdowns: params,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "fetching %s breakdown", dimension)
		}

		for _, row := range rows {
			ad, ok := adsByExternalID[row.AdID]
			if !ok {
				result.Skipped++
				continue
			}

			date, err := utils.ParseDate(row.DateStart)
			if err != nil {
				result.Skipped++
				continue
			}

			dimValue := breakdownValue(dimension, &row)
			if dimValue == "" {
				result.Skipped++
				continue
			}

			parentKey := fmt.Sprintf("%s|%s", ad.ID, date.Format(time.DateOnly))

			if _, stored := parentIDs[parentKey]; !stored {
				switch parentSource[parentKey] {
				case "":
					parentSource[parentKey] = dimension
					parents[parentKey] = &domain.Insight{
						AccountID:  account.ID,
						CampaignID: ad.CampaignID,
						AdGroupID:  ad.AdGroupID,
						AdID:       ad.ID,
						Date:       *date,
						Metrics:    s.rowMetrics(&row),
					}
				case dimension:
					parents[parentKey].Metrics.Add(s.rowMetrics(&row))
				}
			}

			childKey := fmt.Sprintf("%s|%s|%s", parentKey, dimension, dimValue)
			if existing, ok := children[childKey]; ok {
				existing.Metrics.Add(s.rowMetrics(&row))
			} else {
				children[childKey] = &domain.InsightBreakdown{
					Dimension: dimension,
					DimValue:  dimValue,
					Metrics:   s.rowMetrics(&row),
				}
				childParent[childKey] = parentKey
			}
		}
	}

	if len(parents) > 0 {
		insights := make([]*domain.Insight, 0, len(parents))
		dates := make(map[time.Time]bool)
		for _, insight := range parents {
			insights = append(insights, insight)
			dates[insight.Date] = true
		}

		created, err := s.insightRepository.UpsertBatch(ctx, insights)
		if err != nil {
			return nil, errors.Wrap(err, "saving derived daily insights")
		}
		metrics.RowsUpserted.WithLabelValues("insights").Add(float64(len(insights)))

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"rows":       len(insights),
		}).Info("derived daily facts from breakdown rows")

		result.Rows = len(insights)
		for date := range dates {
			result.DatesTouched = append(result.DatesTouched, date)
		}
		for key, id := range created {
			parentIDs[key] = id
		}
	}

	breakdowns := make([]*domain.InsightBreakdown, 0, len(children))
	for key, breakdown := range children {
		id, ok := parentIDs[childParent[key]]
		if !ok {
			result.Skipped++
			continue
		}
		breakdown.InsightID = id
		breakdowns = append(breakdowns, breakdown)
	}

	if err := s.breakdownRepository.UpsertBatch(ctx, breakdowns); err != nil {
		return nil, errors.Wrap(err, "saving breakdowns")
	}
	metrics.RowsUpserted.WithLabelValues("insight_breakdowns").Add(float64(len(breakdowns)))

	result.Breakdowns = len(breakdowns)
	return result, nil
}

func breakdownValue(dimension domain.BreakdownDimension, row *metadomain.InsightRow) string {
	switch dimension {
	case domain.BreakdownDevice:
		return row.DevicePlatform
	case domain.BreakdownAgeGender:
		if row.Age == "" && row.Gender == "" {
			return ""
		}
		return row.Age + "|" + row.Gender
	case domain.BreakdownRegion:
		return row.Region
	}
	return ""
}
