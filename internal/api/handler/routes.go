package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/api/handler/router"
	"github.com/adsight/ads-sync-api/internal/usecases/aggregating"
	"github.com/adsight/ads-sync-api/internal/usecases/insightsync"
	"github.com/adsight/ads-sync-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Sync(dispatcher SyncDispatcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
	}
}

func Ads(insightSyncer insightsync.InsightSyncer, accountRepository repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/ads/:ad_id/hourly-sync",
			Method:      http.MethodPost,
			Handler:     SyncAdHourly(insightSyncer, accountRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Branches(
	service aggregating.Aggregator,
	branchRepository repository.BranchRepository,
	statRepository repository.BranchDailyStatRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/branches/:id/rebuild",
			Method:      http.MethodPost,
			Handler:     RebuildBranchStats(service, branchRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/branches/:id/stats",
			Method:      http.MethodGet,
			Handler:     GetBranchStats(statRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
	}
}

func CronSettings(service repository.CronSettingRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/cron-settings",
			Method:      http.MethodGet,
			Handler:     ListCronSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyRole()},
		},
		{
			Path:        "/v1/tenants/:id/cron-settings",
			Method:      http.MethodPut,
			Handler:     UpsertCronSetting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
