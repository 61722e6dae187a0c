package handler

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/internal/scheduler"
	"github.com/adsight/ads-sync-api/pkg/apiErrors"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SyncDispatcher is the dispatcher surface the trigger routes need.
type SyncDispatcher interface {
	TriggerManualSync(ctx context.Context, opts domain.DispatchOptions) (*domain.DispatchResult, error)
	GetStatus() *scheduler.Status
}

type syncRunRequest struct {
	Hour      *int     `json:"hour,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Types     []string `json:"types,omitempty"`
	TenantID  string   `json:"tenant_id,omitempty"`
	Force     bool     `json:"force"`
}

// RunSync triggers a dispatch outside the schedule. The run is synchronous:
// the response carries the full dispatch result.
func RunSync(dispatcher SyncDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSync")

		opts, err := parseSyncRunRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := dispatcher.TriggerManualSync(r.Context(), *opts)
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "A sync run is already in progress", nil)
				return
			}

			logrus.WithError(err).Error("manual sync failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sync run failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

// GetSyncStatus reports the dispatcher state and the last dispatch result.
func GetSyncStatus(dispatcher SyncDispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(dispatcher.GetStatus()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func parseSyncRunRequest(r *http.Request) (*domain.DispatchOptions, error) {
	var req syncRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid request body")
	}

	opts := &domain.DispatchOptions{
		TenantID: req.TenantID,
		Force:    req.Force,
	}

	if req.Hour != nil {
		if *req.Hour < 0 || *req.Hour > 23 {
			return nil, errors.Errorf("hour must be between 0 and 23, got %d", *req.Hour)
		}
		opts.Hour = req.Hour
	}

	if req.StartDate != "" {
		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return nil, errors.Wrap(err, "invalid start_date")
		}
		opts.StartDate = start
	}

	if req.EndDate != "" {
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, errors.Wrap(err, "invalid end_date")
		}
		opts.EndDate = end
	}

	if opts.StartDate != nil && opts.EndDate != nil && opts.EndDate.Before(*opts.StartDate) {
		return nil, errors.New("end_date must not be before start_date")
	}

	for _, t := range req.Types {
		syncType := domain.SyncType(t)
		if !domain.FlagsForType(syncType).Any() {
			return nil, errors.Errorf("unknown sync type %q", t)
		}
		opts.Types = append(opts.Types, syncType)
	}

	return opts, nil
}
