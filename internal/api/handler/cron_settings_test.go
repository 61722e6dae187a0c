package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/api/handler"
	"github.com/adsight/ads-sync-api/internal/api/handler/router"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/middleware"
)

func cronSettingsRouter(repo *repomocks.MockCronSettingRepository) router.Router {
	return router.New(router.WithRoutes(handler.CronSettings(repo)...))
}

func TestListCronSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCronSettingRepository(ctrl)

	repo.EXPECT().
		ListByTenant(gomock.Any(), "tn1").
		Return([]*domain.CronSetting{
			{ID: "cs1", TenantID: "tn1", SyncType: domain.SyncTypeDaily, AllowedHours: []int{6, 18}, Enabled: true},
		}, nil)

	rt := cronSettingsRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/tenants/tn1/cron-settings", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sync_type":"daily"`)
	assert.Contains(t, rec.Body.String(), `[6,18]`)
}

func TestUpsertCronSetting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCronSettingRepository(ctrl)

	var saved *domain.CronSetting
	repo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, setting *domain.CronSetting) error {
			saved = setting
			return nil
		})

	rt := cronSettingsRouter(repo)

	body := `{"sync_type": "hourly", "allowed_hours": [8, 12, 20], "enabled": true}`
	req := httptest.NewRequest(http.MethodPut, "/v1/tenants/tn1/cron-settings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "tn1", saved.TenantID)
	assert.Equal(t, domain.SyncTypeHourly, saved.SyncType)
	assert.Equal(t, []int{8, 12, 20}, saved.AllowedHours)
	assert.True(t, saved.Enabled)
}

func TestUpsertCronSettingRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCronSettingRepository(ctrl)

	rt := cronSettingsRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/v1/tenants/tn1/cron-settings", strings.NewReader(`{"sync_type":"weekly"}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertCronSettingRejectsInvalidHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCronSettingRepository(ctrl)

	rt := cronSettingsRouter(repo)

	body := `{"sync_type": "daily", "allowed_hours": [8, 24]}`
	req := httptest.NewRequest(http.MethodPut, "/v1/tenants/tn1/cron-settings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertCronSettingRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCronSettingRepository(ctrl)

	rt := cronSettingsRouter(repo)

	body := `{"sync_type": "daily", "enabled": true}`
	req := httptest.NewRequest(http.MethodPut, "/v1/tenants/tn1/cron-settings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
