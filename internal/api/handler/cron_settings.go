package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/apiErrors"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

type upsertCronSettingRequest struct {
	SyncType     string `json:"sync_type"`
	AllowedHours []int  `json:"allowed_hours"`
	Enabled      bool   `json:"enabled"`
}

// ListCronSettings returns the schedule settings of one tenant.
func ListCronSettings(service repository.CronSettingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant ID is required", nil)
			return
		}

		settings, err := service.ListByTenant(r.Context(), tenantID)
		if err != nil {
			logrus.WithError(err).Error("failed to list cron settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list cron settings", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

// UpsertCronSetting creates or updates one (tenant, sync type) schedule
// setting. The change takes effect on the next dispatch tick.
func UpsertCronSetting(service repository.CronSettingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertCronSetting")

		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant ID is required", nil)
			return
		}

		var req upsertCronSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		syncType := domain.SyncType(req.SyncType)
		if !domain.FlagsForType(syncType).Any() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown sync type: "+req.SyncType, nil)
			return
		}

		for _, hour := range req.AllowedHours {
			if hour < 0 || hour > 23 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Allowed hours must be between 0 and 23", nil)
				return
			}
		}

		id, err := utils.GenerateID()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to generate identifier", nil)
			return
		}

		setting := &domain.CronSetting{
			ID:           id,
			TenantID:     tenantID,
			SyncType:     syncType,
			AllowedHours: req.AllowedHours,
			Enabled:      req.Enabled,
		}

		if err := service.SaveOrUpdate(r.Context(), setting); err != nil {
			logrus.WithError(err).Error("failed to save cron setting")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to save cron setting", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(setting); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}
