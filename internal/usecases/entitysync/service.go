package entitysync

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

var ErrAccountDisconnected = errors.New("account disconnected, token no longer valid")

type Service struct {
	client             metaclient.Client
	accountRepository  repository.AccountRepository
	campaignRepository repository.CampaignRepository
	adGroupRepository  repository.AdGroupRepository
	adRepository       repository.AdRepository
	creativeRepository repository.CreativeRepository
}

func NewService(
	client metaclient.Client,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adGroupRepo repository.AdGroupRepository,
	adRepo repository.AdRepository,
	creativeRepo repository.CreativeRepository,
) EntitySyncer {
	return &Service{
		client:             client,
		accountRepository:  accountRepo,
		campaignRepository: campaignRepo,
		adGroupRepository:  adGroupRepo,
		adRepository:       adRepo,
		creativeRepository: creativeRepo,
	}
}

func (s *Service) RefreshAccountState(ctx context.Context, account *domain.Account) error {
	raw, err := s.client.GetAdAccount(ctx, account.ExternalID, account.AccessToken)
	if err != nil {
		var authErr *metadomain.AuthError
		if errors.As(err, &authErr) {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"tenant_id":  account.TenantID,
			}).Warn("token rejected by platform, marking account disconnected")

			if markErr := s.accountRepository.MarkDisconnected(ctx, account.ID); markErr != nil {
				return errors.Wrap(markErr, "marking account disconnected")
			}
			account.Status = domain.AccountStatusDisconnected
			return ErrAccountDisconnected
		}
		return errors.Wrap(err, "refreshing account state")
	}

	account.Name = raw.Name
	account.Currency = raw.Currency
	account.Timezone = raw.Timezone
	if raw.AccountStatus == metadomain.AccountStatusCodeActive {
		account.Status = domain.AccountStatusActive
	} else {
		account.Status = domain.AccountStatusInactive
	}

	if balance, err := strconv.ParseFloat(raw.Balance, 64); err == nil {
		account.Balance = utils.FromMinorUnits(balance, raw.Currency)
	}

	return nil
}

// SyncAccount mirrors the account's structural entities. Internal IDs are
// preserved across passes so insight foreign keys stay stable. A full pass
// ignores the incremental watermark and refetches every entity.
func (s *Service) SyncAccount(ctx context.Context, account *domain.Account, full bool) (*domain.EntitySyncResult, error) {
	since := account.LastSyncedAt
	if full {
		since = nil
	}

	if err := s.RefreshAccountState(ctx, account); err != nil {
		return nil, err
	}

	result := &domain.EntitySyncResult{}

	campaignIDs, err := s.syncCampaigns(ctx, account, since, result)
	if err != nil {
		return nil, err
	}

	adGroupIDs, stopTimes, err := s.syncAdGroups(ctx, account, since, campaignIDs, result)
	if err != nil {
		return nil, err
	}

	if err := s.syncAds(ctx, account, since, campaignIDs, adGroupIDs, stopTimes, result); err != nil {
		return nil, err
	}

	if err := s.accountRepository.UpdateSyncState(ctx, account); err != nil {
		return nil, errors.Wrap(err, "updating account sync state")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"campaigns":  result.Campaigns,
		"ad_groups":  result.AdGroups,
		"ads":        result.Ads,
		"creatives":  result.Creatives,
		"orphans":    result.Orphans,
	}).Info("entity sync completed")

	return result, nil
}

// syncCampaigns returns the full externalID -> internalID map for the
// account, including campaigns untouched by this pass.
func (s *Service) syncCampaigns(ctx context.Context, account *domain.Account, since *time.Time, result *domain.EntitySyncResult) (map[string]string, error) {
	raws, err := s.client.GetCampaigns(ctx, account.ExternalID, account.AccessToken, since)
	if err != nil {
		return nil, errors.Wrap(err, "fetching campaigns")
	}

	idMap, err := s.campaignRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "loading campaign id map")
	}

	campaigns := make([]*domain.Campaign, 0, len(raws))
	for _, raw := range raws {
		id, ok := idMap[raw.ID]
		if !ok {
			if id, err = utils.GenerateID(); err != nil {
				return nil, err
			}
			idMap[raw.ID] = id
		}

		campaigns = append(campaigns, &domain.Campaign{
			ID:              id,
			AccountID:       account.ID,
			ExternalID:      raw.ID,
			Name:            raw.Name,
			Objective:       raw.Objective,
			Status:          domain.EntityStatus(raw.Status),
			EffectiveStatus: domain.EntityStatus(raw.EffectiveStatus),
			DailyBudget:     s.budget(raw.DailyBudget, account.Currency),
			LifetimeBudget:  s.budget(raw.LifetimeBudget, account.Currency),
			StartTime:       metadomain.ParseTime(raw.StartTime),
			StopTime:        metadomain.ParseTime(raw.StopTime),
			UpdatedTime:     metadomain.ParseTime(raw.UpdatedTime),
		})
	}

	if err := s.campaignRepository.SaveOrUpdateBatch(ctx, campaigns); err != nil {
		return nil, errors.Wrap(err, "saving campaigns")
	}

	result.Campaigns = len(campaigns)
	return idMap, nil
}

// syncAdGroups returns the externalID -> internalID map plus the stop time
// of every ad group, fresher fetched values overlaying the stored ones. Ads
// inherit delivery end from their group, so the map must also cover groups
// untouched by an incremental pass.
func (s *Service) syncAdGroups(ctx context.Context, account *domain.Account, since *time.Time, campaignIDs map[string]string, result *domain.EntitySyncResult) (map[string]string, map[string]*time.Time, error) {
	raws, err := s.client.GetAdSets(ctx, account.ExternalID, account.AccessToken, since)
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetching ad groups")
	}

	idMap, err := s.adGroupRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading ad group id map")
	}

	stopTimes, err := s.adGroupRepository.ListStopTimesByAccount(ctx, account.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading ad group stop times")
	}

	adGroups := make([]*domain.AdGroup, 0, len(raws))
	for _, raw := range raws {
		campaignID, ok := campaignIDs[raw.CampaignID]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"ad_group":    raw.ID,
				"campaign_id": raw.CampaignID,
			}).Warn("skipping ad group with unknown campaign")
			result.Orphans++
			continue
		}

		id, ok := idMap[raw.ID]
		if !ok {
			if id, err = utils.GenerateID(); err != nil {
				return nil, nil, err
			}
			idMap[raw.ID] = id
		}

		stopTime := metadomain.ParseTime(raw.EndTime)
		stopTimes[raw.ID] = stopTime

		adGroups = append(adGroups, &domain.AdGroup{
			ID:              id,
			AccountID:       account.ID,
			CampaignID:      campaignID,
			ExternalID:      raw.ID,
			Name:            raw.Name,
			Status:          domain.EntityStatus(raw.Status),
			EffectiveStatus: domain.EntityStatus(raw.EffectiveStatus),
			DailyBudget:     s.budget(raw.DailyBudget, account.Currency),
			StartTime:       metadomain.ParseTime(raw.StartTime),
			StopTime:        stopTime,
			UpdatedTime:     metadomain.ParseTime(raw.UpdatedTime),
		})
	}

	if err := s.adGroupRepository.SaveOrUpdateBatch(ctx, adGroups); err != nil {
		return nil, nil, errors.Wrap(err, "saving ad groups")
	}

	result.AdGroups = len(adGroups)
	return idMap, stopTimes, nil
}

func (s *Service) syncAds(ctx context.Context, account *domain.Account, since *time.Time, campaignIDs, adGroupIDs map[string]string, stopTimes map[string]*time.Time, result *domain.EntitySyncResult) error {
	raws, err := s.client.GetAds(ctx, account.ExternalID, account.AccessToken, since)
	if err != nil {
		return errors.Wrap(err, "fetching ads")
	}

	creativeIDs, creatives, err := s.collectCreatives(ctx, account, raws)
	if err != nil {
		return err
	}

	idMap, err := s.adRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return errors.Wrap(err, "loading ad id map")
	}

	ads := make([]*domain.Ad, 0, len(raws))
	for _, raw := range raws {
		ad, orphan, err := s.buildAd(account, raw, campaignIDs, adGroupIDs, creativeIDs, idMap, stopTimes)
		if err != nil {
			return err
		}
		if orphan {
			result.Orphans++
			continue
		}
		ads = append(ads, ad)
	}

	if err := s.adRepository.SaveOrUpdateBatch(ctx, ads); err != nil {
		return errors.Wrap(err, "saving ads")
	}

	result.Ads = len(ads)
	result.Creatives = len(creatives)
	return nil
}

// collectCreatives deduplicates the creatives embedded in the ads payload
// and upserts them before the ads link to them.
func (s *Service) collectCreatives(ctx context.Context, account *domain.Account, raws []metadomain.Ad) (map[string]string, []*domain.Creative, error) {
	idMap, err := s.creativeRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading creative id map")
	}

	seen := make(map[string]bool)
	creatives := make([]*domain.Creative, 0)
	for _, raw := range raws {
		if raw.Creative == nil || raw.Creative.ID == "" || seen[raw.Creative.ID] {
			continue
		}
		seen[raw.Creative.ID] = true

		id, ok := idMap[raw.Creative.ID]
		if !ok {
			if id, err = utils.GenerateID(); err != nil {
				return nil, nil, err
			}
			idMap[raw.Creative.ID] = id
		}

		creatives = append(creatives, &domain.Creative{
			ID:           id,
			AccountID:    account.ID,
			ExternalID:   raw.Creative.ID,
			Name:         raw.Creative.Name,
			Title:        raw.Creative.Title,
			Body:         raw.Creative.Body,
			ThumbnailURL: raw.Creative.ThumbnailURL,
		})
	}

	if err := s.creativeRepository.SaveOrUpdateBatch(ctx, creatives); err != nil {
		return nil, nil, errors.Wrap(err, "saving creatives")
	}

	return idMap, creatives, nil
}

func (s *Service) buildAd(account *domain.Account, raw metadomain.Ad, campaignIDs, adGroupIDs, creativeIDs, idMap map[string]string, stopTimes map[string]*time.Time) (*domain.Ad, bool, error) {
	campaignID, campaignOK := campaignIDs[raw.CampaignID]
	adGroupID, adGroupOK := adGroupIDs[raw.AdsetID]
	if !campaignOK || !adGroupOK {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"ad":         raw.ID,
		}).Warn("skipping ad with unknown lineage")
		return nil, true, nil
	}

	id, ok := idMap[raw.ID]
	if !ok {
		var err error
		if id, err = utils.GenerateID(); err != nil {
			return nil, false, err
		}
		idMap[raw.ID] = id
	}

	var creativeID *string
	if raw.Creative != nil {
		if internal, ok := creativeIDs[raw.Creative.ID]; ok {
			creativeID = &internal
		}
	}

	return &domain.Ad{
		ID:              id,
		AccountID:       account.ID,
		CampaignID:      campaignID,
		AdGroupID:       adGroupID,
		ExternalID:      raw.ID,
		Name:            raw.Name,
		Status:          domain.EntityStatus(raw.Status),
		EffectiveStatus: domain.EntityStatus(raw.EffectiveStatus),
		CreativeID:      creativeID,
		// Delivery ends at the ad group's stop time even while the ad
		// itself stays ACTIVE; IsServing depends on it.
		StopTime:    stopTimes[raw.AdsetID],
		UpdatedTime: metadomain.ParseTime(raw.UpdatedTime),
	}, false, nil
}

// EnsureAd resolves an ad seen in an insights row but absent from the local
// mirror, fetching it inline. When the ad's lineage is also unknown a full
// structural pass fills the gap.
func (s *Service) EnsureAd(ctx context.Context, account *domain.Account, adExternalID string) (*domain.Ad, error) {
	ad, err := s.adRepository.GetByExternalID(ctx, account.ID, adExternalID)
	if err != nil {
		return nil, err
	}
	if ad != nil {
		return ad, nil
	}

	raw, err := s.client.GetAdByID(ctx, adExternalID, account.AccessToken)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching ad %s inline", adExternalID)
	}

	campaignIDs, err := s.campaignRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	adGroupIDs, err := s.adGroupRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	_, campaignOK := campaignIDs[raw.CampaignID]
	_, adGroupOK := adGroupIDs[raw.AdsetID]
	if !campaignOK || !adGroupOK {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"ad":         adExternalID,
		}).Info("ad lineage unknown, running full structural pass")

		// The missing parents may predate the incremental watermark, so
		// the fallback pass must refetch everything.
		if _, err := s.SyncAccount(ctx, account, true); err != nil {
			return nil, err
		}
		return s.adRepository.GetByExternalID(ctx, account.ID, adExternalID)
	}

	stopTimes, err := s.adGroupRepository.ListStopTimesByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	creativeIDs, _, err := s.collectCreatives(ctx, account, []metadomain.Ad{*raw})
	if err != nil {
		return nil, err
	}

	idMap, err := s.adRepository.ListIDMapByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	ad, orphan, err := s.buildAd(account, *raw, campaignIDs, adGroupIDs, creativeIDs, idMap, stopTimes)
	if err != nil || orphan {
		return nil, err
	}

	if err := s.adRepository.SaveOrUpdateBatch(ctx, []*domain.Ad{ad}); err != nil {
		return nil, errors.Wrap(err, "saving self-healed ad")
	}

	return ad, nil
}

func (s *Service) budget(value, currency string) float64 {
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return utils.FromMinorUnits(v, currency)
}
