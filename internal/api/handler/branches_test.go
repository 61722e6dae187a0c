package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/api/handler"
	"github.com/adsight/ads-sync-api/internal/api/handler/router"
	"github.com/adsight/ads-sync-api/internal/domain"
	aggmocks "github.com/adsight/ads-sync-api/internal/usecases/aggregating/mocks"
	"github.com/adsight/ads-sync-api/pkg/middleware"
)

func TestRebuildBranchStats(t *testing.T) {
	ctrl := gomock.NewController(t)

	aggregator := aggmocks.NewMockAggregator(ctrl)
	branchRepo := repomocks.NewMockBranchRepository(ctrl)
	statRepo := repomocks.NewMockBranchDailyStatRepository(ctrl)

	branchRepo.EXPECT().
		GetByID(gomock.Any(), "br1").
		Return(&domain.Branch{ID: "br1", TenantID: "tn1"}, nil)

	aggregator.EXPECT().
		RecomputeBranchRange(
			gomock.Any(),
			"br1",
			domain.PlatformFacebook,
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC),
		).
		Return(4, nil)

	rt := router.New(router.WithRoutes(handler.Branches(aggregator, branchRepo, statRepo)...))

	body := `{"start_date": "2026-08-01", "end_date": "2026-08-04"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/branches/br1/rebuild", strings.NewReader(body))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"days":4`)
	assert.Contains(t, rec.Body.String(), `"platform":"facebook"`)
}

func TestRebuildBranchStatsUnknownBranch(t *testing.T) {
	ctrl := gomock.NewController(t)

	aggregator := aggmocks.NewMockAggregator(ctrl)
	branchRepo := repomocks.NewMockBranchRepository(ctrl)
	statRepo := repomocks.NewMockBranchDailyStatRepository(ctrl)

	branchRepo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, nil)

	rt := router.New(router.WithRoutes(handler.Branches(aggregator, branchRepo, statRepo)...))

	req := httptest.NewRequest(http.MethodPost, "/v1/branches/missing/rebuild", strings.NewReader(`{"start_date":"2026-08-01"}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRebuildBranchStatsRequiresStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)

	aggregator := aggmocks.NewMockAggregator(ctrl)
	branchRepo := repomocks.NewMockBranchRepository(ctrl)
	statRepo := repomocks.NewMockBranchDailyStatRepository(ctrl)

	branchRepo.EXPECT().
		GetByID(gomock.Any(), "br1").
		Return(&domain.Branch{ID: "br1"}, nil)

	rt := router.New(router.WithRoutes(handler.Branches(aggregator, branchRepo, statRepo)...))

	req := httptest.NewRequest(http.MethodPost, "/v1/branches/br1/rebuild", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBranchStats(t *testing.T) {
	ctrl := gomock.NewController(t)

	aggregator := aggmocks.NewMockAggregator(ctrl)
	branchRepo := repomocks.NewMockBranchRepository(ctrl)
	statRepo := repomocks.NewMockBranchDailyStatRepository(ctrl)

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	stat := &domain.BranchDailyStat{
		BranchID:     "br1",
		Date:         date,
		PlatformCode: domain.PlatformFacebook,
		Accounts:     3,
	}
	stat.Spend = 120.5

	statRepo.EXPECT().
		GetByBranchAndDate(gomock.Any(), "br1", domain.PlatformFacebook, date).
		Return(stat, nil)

	rt := router.New(router.WithRoutes(handler.Branches(aggregator, branchRepo, statRepo)...))

	req := httptest.NewRequest(http.MethodGet, "/v1/branches/br1/stats?date=2026-08-28", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accounts":3`)
}

func TestGetBranchStatsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	aggregator := aggmocks.NewMockAggregator(ctrl)
	branchRepo := repomocks.NewMockBranchRepository(ctrl)
	statRepo := repomocks.NewMockBranchDailyStatRepository(ctrl)

	statRepo.EXPECT().
		GetByBranchAndDate(gomock.Any(), "br1", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	rt := router.New(router.WithRoutes(handler.Branches(aggregator, branchRepo, statRepo)...))

	req := httptest.NewRequest(http.MethodGet, "/v1/branches/br1/stats?date=2026-08-28", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
