package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/usecases/insightsync"
	"github.com/adsight/ads-sync-api/pkg/apiErrors"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

type adHourlySyncRequest struct {
	Date string `json:"date,omitempty"`
}

// SyncAdHourly pulls hour-grain insights for one ad on demand, bypassing the
// serving filter of the scheduled hourly pass. Useful to backfill an ad that
// stopped delivering mid-day.
func SyncAdHourly(insightSyncer insightsync.InsightSyncer, accountRepository repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAdHourly")

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		adExternalID := params.ByName("ad_id")
		if accountID == "" || adExternalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID and ad ID are required", nil)
			return
		}

		account, err := accountRepository.GetByID(r.Context(), accountID)
		if err != nil {
			logrus.WithError(err).Error("failed to load account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load account", nil)
			return
		}
		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Account not found", map[string]any{
				"account_id": accountID,
			})
			return
		}

		date, err := parseAdHourlySyncRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := insightSyncer.SyncHourlyAd(r.Context(), account, adExternalID, date)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": accountID,
				"ad_id":      adExternalID,
			}).Error("targeted hourly sync failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Hourly sync failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func parseAdHourlySyncRequest(r *http.Request) (time.Time, error) {
	var req adHourlySyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return time.Time{}, errors.Wrap(err, "invalid request body")
	}

	if req.Date == "" {
		return utils.TruncateToDay(time.Now().UTC()), nil
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid date")
	}
	return *date, nil
}
