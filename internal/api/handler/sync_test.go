package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adsight/ads-sync-api/internal/api/handler"
	"github.com/adsight/ads-sync-api/internal/api/handler/router"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/internal/scheduler"
	"github.com/adsight/ads-sync-api/pkg/middleware"
)

type fakeDispatcher struct {
	result  *domain.DispatchResult
	err     error
	status  *scheduler.Status
	gotOpts *domain.DispatchOptions
}

func (f *fakeDispatcher) TriggerManualSync(_ context.Context, opts domain.DispatchOptions) (*domain.DispatchResult, error) {
	f.gotOpts = &opts
	return f.result, f.err
}

func (f *fakeDispatcher) GetStatus() *scheduler.Status {
	return f.status
}

func withRole(r *http.Request, role string) *http.Request {
	claims := &middleware.SystemClaims{Role: role}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyCaller, claims))
}

func syncRouter(dispatcher *fakeDispatcher) router.Router {
	return router.New(router.WithRoutes(handler.Sync(dispatcher)...))
}

func TestRunSyncParsesOptions(t *testing.T) {
	dispatcher := &fakeDispatcher{
		result: &domain.DispatchResult{Hour: 14},
	}
	rt := syncRouter(dispatcher)

	body := `{
		"hour": 14,
		"start_date": "2026-08-01",
		"end_date": "2026-08-03",
		"types": ["daily", "lead"],
		"tenant_id": "tn1",
		"force": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", strings.NewReader(body))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dispatcher.gotOpts)

	opts := dispatcher.gotOpts
	require.NotNil(t, opts.Hour)
	assert.Equal(t, 14, *opts.Hour)
	assert.Equal(t, "tn1", opts.TenantID)
	assert.True(t, opts.Force)
	assert.Equal(t, []domain.SyncType{domain.SyncTypeDaily, domain.SyncTypeLead}, opts.Types)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *opts.StartDate)
	assert.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), *opts.EndDate)
}

func TestRunSyncAcceptsEmptyBody(t *testing.T) {
	dispatcher := &fakeDispatcher{result: &domain.DispatchResult{}}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dispatcher.gotOpts)
	assert.Nil(t, dispatcher.gotOpts.Hour)
	assert.False(t, dispatcher.gotOpts.Force)
}

func TestRunSyncRejectsUnknownType(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", strings.NewReader(`{"types":["weekly"]}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, dispatcher.gotOpts)
}

func TestRunSyncRejectsInvalidHour(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", strings.NewReader(`{"hour":24}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunSyncConflictWhileRunning(t *testing.T) {
	dispatcher := &fakeDispatcher{err: scheduler.ErrSyncInProgress}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleAdmin))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunSyncRequiresAdminRole(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, dispatcher.gotOpts)
}

func TestGetSyncStatus(t *testing.T) {
	started := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	dispatcher := &fakeDispatcher{
		status: &scheduler.Status{Running: true, LastStartedAt: &started},
	}
	rt := syncRouter(dispatcher)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withRole(req, middleware.RoleOperator))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"running":true`)
}
