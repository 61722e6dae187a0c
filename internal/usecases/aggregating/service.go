package aggregating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/metrics"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

// Aggregator maintains the branch-level daily rollups.
type Aggregator interface {
	// RecomputeBranch rebuilds the rollup for one (branch, platform, date)
	// from scratch and replaces the stored row. Accounts no longer mapped to
	// the branch stop contributing on the next recompute.
	RecomputeBranch(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error)

	// RecomputeBranchRange covers every date of the inclusive window.
	RecomputeBranchRange(ctx context.Context, branchID string, platform domain.PlatformCode, start, end time.Time) (int, error)
}

type Service struct {
	insightRepository repository.InsightRepository
	statRepository    repository.BranchDailyStatRepository
}

func NewService(
	insightRepo repository.InsightRepository,
	statRepo repository.BranchDailyStatRepository,
) Aggregator {
	return &Service{
		insightRepository: insightRepo,
		statRepository:    statRepo,
	}
}

func (s *Service) RecomputeBranch(ctx context.Context, branchID string, platform domain.PlatformCode, date time.Time) (*domain.BranchDailyStat, error) {
	day := utils.TruncateToDay(date)

	stat, err := s.insightRepository.SumByBranchAndDate(ctx, branchID, platform, day)
	if err != nil {
		return nil, errors.Wrap(err, "summing branch facts")
	}

	stat.Spend = utils.RoundWithTwoDecimalPlace(stat.Spend)
	stat.PurchaseValue = utils.RoundWithTwoDecimalPlace(stat.PurchaseValue)

	if err := s.statRepository.Replace(ctx, stat); err != nil {
		return nil, errors.Wrap(err, "replacing branch stat")
	}
	metrics.RowsUpserted.WithLabelValues("branch_daily_stats").Inc()

	logrus.WithFields(logrus.Fields{
		"branch_id": branchID,
		"date":      day.Format(time.DateOnly),
		"accounts":  stat.Accounts,
		"spend":     stat.Spend,
	}).Debug("branch rollup recomputed")

	return stat, nil
}

func (s *Service) RecomputeBranchRange(ctx context.Context, branchID string, platform domain.PlatformCode, start, end time.Time) (int, error) {
	dates := utils.DateRange(start, end)
	for _, date := range dates {
		if _, err := s.RecomputeBranch(ctx, branchID, platform, date); err != nil {
			return 0, err
		}
	}
	return len(dates), nil
}
