package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/internal/usecases/aggregating"
	"github.com/adsight/ads-sync-api/pkg/apiErrors"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

type rebuildBranchRequest struct {
	Platform  string `json:"platform,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type rebuildBranchResponse struct {
	BranchID  string    `json:"branch_id"`
	Platform  string    `json:"platform"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days"`
}

// RebuildBranchStats recomputes the daily rollups of one branch over a date
// range. Used to backfill after branch remapping or account disconnects.
func RebuildBranchStats(service aggregating.Aggregator, branchRepository repository.BranchRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RebuildBranchStats")

		branchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if branchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID is required", nil)
			return
		}

		branch, err := branchRepository.GetByID(r.Context(), branchID)
		if err != nil {
			logrus.WithError(err).Error("failed to load branch")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load branch", nil)
			return
		}
		if branch == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Branch not found", map[string]any{
				"branch_id": branchID,
			})
			return
		}

		platform, start, end, err := parseRebuildRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		days, err := service.RecomputeBranchRange(r.Context(), branch.ID, platform, start, end)
		if err != nil {
			logrus.WithError(err).WithField("branch_id", branch.ID).Error("branch rebuild failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Branch rebuild failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		resp := rebuildBranchResponse{
			BranchID:  branch.ID,
			Platform:  string(platform),
			StartDate: start,
			EndDate:   end,
			Days:      days,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

// GetBranchStats returns the rollup of one branch for a single day.
func GetBranchStats(statRepository repository.BranchDailyStatRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		branchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if branchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Branch ID is required", nil)
			return
		}

		dateParam := r.URL.Query().Get("date")
		if dateParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date query parameter is required", nil)
			return
		}

		date, err := utils.ParseDate(dateParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date: "+err.Error(), nil)
			return
		}

		platform := domain.PlatformFacebook
		if p := r.URL.Query().Get("platform"); p != "" {
			platform = domain.PlatformCode(p)
		}

		stat, err := statRepository.GetByBranchAndDate(r.Context(), branchID, platform, *date)
		if err != nil {
			logrus.WithError(err).Error("failed to load branch stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load branch stats", nil)
			return
		}
		if stat == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "No stats for this branch and date", map[string]any{
				"branch_id": branchID,
				"date":      dateParam,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(stat); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func parseRebuildRequest(r *http.Request) (domain.PlatformCode, time.Time, time.Time, error) {
	var req rebuildBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return "", time.Time{}, time.Time{}, errors.Wrap(err, "invalid request body")
	}

	if req.StartDate == "" {
		return "", time.Time{}, time.Time{}, errors.New("start_date is required")
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, errors.Wrap(err, "invalid start_date")
	}

	end := utils.TruncateToDay(time.Now().UTC())
	if req.EndDate != "" {
		parsed, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return "", time.Time{}, time.Time{}, errors.Wrap(err, "invalid end_date")
		}
		end = *parsed
	}

	if end.Before(*start) {
		return "", time.Time{}, time.Time{}, errors.New("end_date must not be before start_date")
	}

	platform := domain.PlatformFacebook
	if req.Platform != "" {
		platform = domain.PlatformCode(req.Platform)
	}

	return platform, *start, end, nil
}
