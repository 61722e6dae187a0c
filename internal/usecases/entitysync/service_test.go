package entitysync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/mocks"
	"github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	client    *metamocks.MockClient
	accounts  *mocks.MockAccountRepository
	campaigns *mocks.MockCampaignRepository
	adGroups  *mocks.MockAdGroupRepository
	ads       *mocks.MockAdRepository
	creatives *mocks.MockCreativeRepository
}

func newService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		client:    metamocks.NewMockClient(ctrl),
		accounts:  mocks.NewMockAccountRepository(ctrl),
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		adGroups:  mocks.NewMockAdGroupRepository(ctrl),
		ads:       mocks.NewMockAdRepository(ctrl),
		creatives: mocks.NewMockCreativeRepository(ctrl),
	}

	service := &Service{
		client:             m.client,
		accountRepository:  m.accounts,
		campaignRepository: m.campaigns,
		adGroupRepository:  m.adGroups,
		adRepository:       m.ads,
		creativeRepository: m.creatives,
	}

	return service, m
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:          "acc1",
		ExternalID:  "123456",
		TenantID:    "tenant1",
		Platform:    domain.PlatformFacebook,
		Currency:    "USD",
		Status:      domain.AccountStatusActive,
		AccessToken: "token",
	}
}

func TestSyncAccountFullPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	m.client.EXPECT().
		GetAdAccount(gomock.Any(), "123456", "token").
		Return(&metadomain.AdAccount{
			Name:          "Store A",
			AccountStatus: metadomain.AccountStatusCodeActive,
			Currency:      "USD",
			Balance:       "125000",
		}, nil)

	m.client.EXPECT().
		GetCampaigns(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.Campaign{
			{ID: "cmp1", Name: "Campaign One", Status: "ACTIVE", EffectiveStatus: "ACTIVE", DailyBudget: "5000"},
		}, nil)
	m.campaigns.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.campaigns.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, campaigns []*domain.Campaign) error {
			require.Len(t, campaigns, 1)
			assert.NotEmpty(t, campaigns[0].ID)
			assert.Equal(t, "cmp1", campaigns[0].ExternalID)
			assert.Equal(t, 50.0, campaigns[0].DailyBudget)
			return nil
		})

	m.client.EXPECT().
		GetAdSets(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.AdSet{
			{ID: "as1", CampaignID: "cmp1", Name: "Set One", Status: "ACTIVE", EffectiveStatus: "ACTIVE"},
			{ID: "as2", CampaignID: "unknown", Name: "Orphan", Status: "ACTIVE", EffectiveStatus: "ACTIVE"},
		}, nil)
	m.adGroups.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.adGroups.EXPECT().ListStopTimesByAccount(gomock.Any(), "acc1").Return(map[string]*time.Time{}, nil)
	m.adGroups.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adGroups []*domain.AdGroup) error {
			require.Len(t, adGroups, 1)
			assert.Equal(t, "as1", adGroups[0].ExternalID)
			return nil
		})

	creative := &metadomain.Creative{ID: "cr1", Title: "Summer Promo"}
	m.client.EXPECT().
		GetAds(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.Ad{
			{ID: "ad1", AdsetID: "as1", CampaignID: "cmp1", Name: "Ad One", Status: "ACTIVE", EffectiveStatus: "ACTIVE", Creative: creative},
			{ID: "ad2", AdsetID: "as1", CampaignID: "cmp1", Name: "Ad Two", Status: "ACTIVE", EffectiveStatus: "ACTIVE", Creative: creative},
		}, nil)
	m.creatives.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.creatives.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, creatives []*domain.Creative) error {
			// Same creative on both ads is written once.
			require.Len(t, creatives, 1)
			assert.Equal(t, "cr1", creatives[0].ExternalID)
			return nil
		})
	m.ads.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.ads.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ads []*domain.Ad) error {
			require.Len(t, ads, 2)
			require.NotNil(t, ads[0].CreativeID)
			return nil
		})

	m.accounts.EXPECT().UpdateSyncState(gomock.Any(), account).Return(nil)

	result, err := service.SyncAccount(context.Background(), account, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Campaigns)
	assert.Equal(t, 1, result.AdGroups)
	assert.Equal(t, 2, result.Ads)
	assert.Equal(t, 1, result.Creatives)
	assert.Equal(t, 1, result.Orphans)

	assert.Equal(t, "Store A", account.Name)
	assert.Equal(t, 1250.0, account.Balance)
}

func TestRefreshAccountStateMarksDisconnectedOnAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	m.client.EXPECT().
		GetAdAccount(gomock.Any(), "123456", "token").
		Return(nil, &metadomain.AuthError{Message: "token expired", Code: 190})
	m.accounts.EXPECT().MarkDisconnected(gomock.Any(), "acc1").Return(nil)

	err := service.RefreshAccountState(context.Background(), account)
	assert.ErrorIs(t, err, ErrAccountDisconnected)
	assert.Equal(t, domain.AccountStatusDisconnected, account.Status)
}

func TestRefreshAccountStateZeroDecimalCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	m.client.EXPECT().
		GetAdAccount(gomock.Any(), "123456", "token").
		Return(&metadomain.AdAccount{
			Name:          "Store VN",
			AccountStatus: metadomain.AccountStatusCodeActive,
			Currency:      "VND",
			Balance:       "250000",
		}, nil)

	require.NoError(t, service.RefreshAccountState(context.Background(), account))
	assert.Equal(t, 250000.0, account.Balance)
}

func TestEnsureAdReturnsExistingAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	existing := &domain.Ad{ID: "internal1", ExternalID: "ad1"}
	m.ads.EXPECT().GetByExternalID(gomock.Any(), "acc1", "ad1").Return(existing, nil)

	ad, err := service.EnsureAd(context.Background(), account, "ad1")
	require.NoError(t, err)
	assert.Equal(t, existing, ad)
}

func TestEnsureAdFetchesUnknownAdInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	m.ads.EXPECT().GetByExternalID(gomock.Any(), "acc1", "ad9").Return(nil, nil)
	m.client.EXPECT().
		GetAdByID(gomock.Any(), "ad9", "token").
		Return(&metadomain.Ad{
			ID:              "ad9",
			AdsetID:         "as1",
			CampaignID:      "cmp1",
			Name:            "Healed Ad",
			Status:          "ACTIVE",
			EffectiveStatus: "ACTIVE",
		}, nil)
	m.campaigns.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{"cmp1": "c-int"}, nil)
	m.adGroups.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{"as1": "g-int"}, nil)
	stop := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	m.adGroups.EXPECT().ListStopTimesByAccount(gomock.Any(), "acc1").Return(map[string]*time.Time{"as1": &stop}, nil)
	m.creatives.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.creatives.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.ads.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.ads.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ads []*domain.Ad) error {
			require.Len(t, ads, 1)
			assert.Equal(t, "c-int", ads[0].CampaignID)
			assert.Equal(t, "g-int", ads[0].AdGroupID)
			require.NotNil(t, ads[0].StopTime)
			assert.Equal(t, stop, *ads[0].StopTime)
			return nil
		})

	ad, err := service.EnsureAd(context.Background(), account, "ad9")
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.Equal(t, "ad9", ad.ExternalID)
}

func TestSyncAccountPropagatesAdGroupStopTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()

	m.client.EXPECT().
		GetAdAccount(gomock.Any(), "123456", "token").
		Return(&metadomain.AdAccount{
			Name:          "Store A",
			AccountStatus: metadomain.AccountStatusCodeActive,
			Currency:      "USD",
		}, nil)

	m.client.EXPECT().
		GetCampaigns(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.Campaign{
			{ID: "cmp1", Name: "Campaign One", Status: "ACTIVE", EffectiveStatus: "ACTIVE"},
		}, nil)
	m.campaigns.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.campaigns.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(1)).Return(nil)

	// The ad group ended in the past; its ad still reports ACTIVE upstream.
	m.client.EXPECT().
		GetAdSets(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.AdSet{
			{ID: "as1", CampaignID: "cmp1", Name: "Ended Set", Status: "ACTIVE", EffectiveStatus: "ACTIVE", EndTime: "2020-01-01T00:00:00+0000"},
		}, nil)
	m.adGroups.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.adGroups.EXPECT().ListStopTimesByAccount(gomock.Any(), "acc1").Return(map[string]*time.Time{}, nil)
	m.adGroups.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(1)).Return(nil)

	m.client.EXPECT().
		GetAds(gomock.Any(), "123456", "token", gomock.Nil()).
		Return([]metadomain.Ad{
			{ID: "ad1", AdsetID: "as1", CampaignID: "cmp1", Name: "Ad One", Status: "ACTIVE", EffectiveStatus: "ACTIVE"},
		}, nil)
	m.creatives.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.creatives.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.ads.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.ads.EXPECT().
		SaveOrUpdateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ads []*domain.Ad) error {
			require.Len(t, ads, 1)
			require.NotNil(t, ads[0].StopTime)
			assert.Equal(t, 2020, ads[0].StopTime.Year())
			assert.False(t, ads[0].IsServing(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
			return nil
		})

	m.accounts.EXPECT().UpdateSyncState(gomock.Any(), account).Return(nil)

	_, err := service.SyncAccount(context.Background(), account, false)
	require.NoError(t, err)
}

func TestEnsureAdUnknownLineageTriggersFullRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := testAccount()
	lastSynced := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	account.LastSyncedAt = &lastSynced

	m.ads.EXPECT().GetByExternalID(gomock.Any(), "acc1", "ad9").Return(nil, nil)
	m.client.EXPECT().
		GetAdByID(gomock.Any(), "ad9", "token").
		Return(&metadomain.Ad{ID: "ad9", AdsetID: "as-new", CampaignID: "cmp-new", Status: "ACTIVE", EffectiveStatus: "ACTIVE"}, nil)
	m.campaigns.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.adGroups.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)

	// The fallback structural pass must ignore the watermark: the stale
	// parents were updated before it.
	m.client.EXPECT().
		GetAdAccount(gomock.Any(), "123456", "token").
		Return(&metadomain.AdAccount{Name: "Store A", AccountStatus: metadomain.AccountStatusCodeActive, Currency: "USD"}, nil)
	m.client.EXPECT().GetCampaigns(gomock.Any(), "123456", "token", gomock.Nil()).Return(nil, nil)
	m.campaigns.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.campaigns.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.client.EXPECT().GetAdSets(gomock.Any(), "123456", "token", gomock.Nil()).Return(nil, nil)
	m.adGroups.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.adGroups.EXPECT().ListStopTimesByAccount(gomock.Any(), "acc1").Return(map[string]*time.Time{}, nil)
	m.adGroups.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.client.EXPECT().GetAds(gomock.Any(), "123456", "token", gomock.Nil()).Return(nil, nil)
	m.creatives.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.creatives.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.ads.EXPECT().ListIDMapByAccount(gomock.Any(), "acc1").Return(map[string]string{}, nil)
	m.ads.EXPECT().SaveOrUpdateBatch(gomock.Any(), gomock.Len(0)).Return(nil)
	m.accounts.EXPECT().UpdateSyncState(gomock.Any(), account).Return(nil)

	healed := &domain.Ad{ID: "a-int", ExternalID: "ad9"}
	m.ads.EXPECT().GetByExternalID(gomock.Any(), "acc1", "ad9").Return(healed, nil)

	ad, err := service.EnsureAd(context.Background(), account, "ad9")
	require.NoError(t, err)
	assert.Equal(t, healed, ad)
}
