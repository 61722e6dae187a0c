package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRecomputeBranchReplacesRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insights := mocks.NewMockInsightRepository(ctrl)
	stats := mocks.NewMockBranchDailyStatRepository(ctrl)
	service := &Service{insightRepository: insights, statRepository: stats}

	date := time.Date(2026, 8, 1, 13, 45, 0, 0, time.UTC)
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	computed := &domain.BranchDailyStat{
		BranchID:     "br1",
		Date:         day,
		PlatformCode: domain.PlatformFacebook,
		Accounts:     2,
		Metrics:      domain.Metrics{Spend: 120.5, Impressions: 4000},
	}

	insights.EXPECT().
		SumByBranchAndDate(gomock.Any(), "br1", domain.PlatformFacebook, day).
		Return(computed, nil)
	stats.EXPECT().Replace(gomock.Any(), computed).Return(nil)

	stat, err := service.RecomputeBranch(context.Background(), "br1", domain.PlatformFacebook, date)
	require.NoError(t, err)
	assert.Equal(t, computed, stat)
}

func TestRecomputeBranchRangeCoversEveryDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insights := mocks.NewMockInsightRepository(ctrl)
	stats := mocks.NewMockBranchDailyStatRepository(ctrl)
	service := &Service{insightRepository: insights, statRepository: stats}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	insights.EXPECT().
		SumByBranchAndDate(gomock.Any(), "br1", domain.PlatformFacebook, gomock.Any()).
		Return(&domain.BranchDailyStat{BranchID: "br1"}, nil).
		Times(3)
	stats.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	n, err := service.RecomputeBranchRange(context.Background(), "br1", domain.PlatformFacebook, start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecomputeBranchWritesZeroRowWhenNoFacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insights := mocks.NewMockInsightRepository(ctrl)
	stats := mocks.NewMockBranchDailyStatRepository(ctrl)
	service := &Service{insightRepository: insights, statRepository: stats}

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	empty := &domain.BranchDailyStat{BranchID: "br1", Date: day, PlatformCode: domain.PlatformFacebook}

	insights.EXPECT().
		SumByBranchAndDate(gomock.Any(), "br1", domain.PlatformFacebook, day).
		Return(empty, nil)
	// A branch that lost all its accounts still gets its stale numbers
	// overwritten with zeros.
	stats.EXPECT().Replace(gomock.Any(), empty).Return(nil)

	stat, err := service.RecomputeBranch(context.Background(), "br1", domain.PlatformFacebook, day)
	require.NoError(t, err)
	assert.Equal(t, 0, stat.Accounts)
}
