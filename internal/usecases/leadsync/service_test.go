package leadsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/adsight/ads-sync-api/infrastructure/integrator/meta/mocks"
	"github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	client    *metamocks.MockClient
	leads     *mocks.MockLeadRepository
	accounts  *mocks.MockAccountRepository
	ads       *mocks.MockAdRepository
	creatives *mocks.MockCreativeRepository
}

func newService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		client:    metamocks.NewMockClient(ctrl),
		leads:     mocks.NewMockLeadRepository(ctrl),
		accounts:  mocks.NewMockAccountRepository(ctrl),
		ads:       mocks.NewMockAdRepository(ctrl),
		creatives: mocks.NewMockCreativeRepository(ctrl),
	}

	service := &Service{
		cfg:                &config.Config{},
		client:             m.client,
		leadRepository:     m.leads,
		accountRepository:  m.accounts,
		adRepository:       m.ads,
		creativeRepository: m.creatives,
	}

	return service, m
}

func stringPtr(s string) *string { return &s }

func tenantAccount() *domain.Account {
	return &domain.Account{
		ID:          "acc1",
		ExternalID:  "123456",
		TenantID:    "tenant1",
		AccessToken: "token",
	}
}

func TestAttributeLeadsByReferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := tenantAccount()

	m.leads.EXPECT().
		ListUnattributed(gomock.Any(), "tenant1", uint64(leadBatchLimit)).
		Return([]*domain.Lead{
			{ID: "lead1", TenantID: "tenant1", AccountID: stringPtr("acc1"), ConversationID: "conv1", Title: "Customer"},
		}, nil)
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	m.client.EXPECT().
		GetConversationReferral(gomock.Any(), "conv1", "token").
		Return(&metadomain.Referral{AdID: "ad-ext"}, nil)
	m.ads.EXPECT().
		GetByExternalID(gomock.Any(), "acc1", "ad-ext").
		Return(&domain.Ad{ID: "ad-int", ExternalID: "ad-ext"}, nil)
	m.leads.EXPECT().
		Attribute(gomock.Any(), "lead1", "ad-int", domain.LeadAttributedByReferral).
		Return(true, nil)

	attributed, err := service.AttributeLeads(context.Background(), "tenant1")
	require.NoError(t, err)
	assert.Equal(t, 1, attributed)
}

func TestAttributeLeadsFallsBackToCreativeTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := tenantAccount()

	m.leads.EXPECT().
		ListUnattributed(gomock.Any(), "tenant1", uint64(leadBatchLimit)).
		Return([]*domain.Lead{
			{ID: "lead1", TenantID: "tenant1", AccountID: stringPtr("acc1"), ConversationID: "conv1", Title: "  SUMMER   Promo sale "},
		}, nil)
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	// Referral lookup comes back empty; creative title match takes over.
	m.client.EXPECT().
		GetConversationReferral(gomock.Any(), "conv1", "token").
		Return(nil, nil)

	m.creatives.EXPECT().ListByAccount(gomock.Any(), "acc1").Return([]*domain.Creative{
		{ID: "cr1", Title: "Summer Promo"},
		{ID: "cr2", Title: "Winter Launch"},
	}, nil)
	m.ads.EXPECT().ListByAccount(gomock.Any(), "acc1").Return([]*domain.Ad{
		{ID: "ad-other", CreativeID: stringPtr("cr2")},
		{ID: "ad-match", CreativeID: stringPtr("cr1")},
	}, nil)
	m.leads.EXPECT().
		Attribute(gomock.Any(), "lead1", "ad-match", domain.LeadAttributedByCreative).
		Return(true, nil)

	attributed, err := service.AttributeLeads(context.Background(), "tenant1")
	require.NoError(t, err)
	assert.Equal(t, 1, attributed)
}

func TestAttributeLeadsLeavesUnmatchedLeadsAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := tenantAccount()

	m.leads.EXPECT().
		ListUnattributed(gomock.Any(), "tenant1", uint64(leadBatchLimit)).
		Return([]*domain.Lead{
			{ID: "lead1", TenantID: "tenant1", AccountID: stringPtr("acc1"), ConversationID: "conv1", Title: "Unrelated"},
		}, nil)
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	m.client.EXPECT().GetConversationReferral(gomock.Any(), "conv1", "token").Return(nil, nil)
	m.creatives.EXPECT().ListByAccount(gomock.Any(), "acc1").Return([]*domain.Creative{
		{ID: "cr1", Title: "Summer Promo"},
	}, nil)

	attributed, err := service.AttributeLeads(context.Background(), "tenant1")
	require.NoError(t, err)
	assert.Equal(t, 0, attributed)
}

func TestAttributeLeadsContinuesAfterLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl)
	account := tenantAccount()

	m.leads.EXPECT().
		ListUnattributed(gomock.Any(), "tenant1", uint64(leadBatchLimit)).
		Return([]*domain.Lead{
			{ID: "lead1", TenantID: "tenant1", AccountID: stringPtr("acc1"), ConversationID: "conv1", Title: ""},
			{ID: "lead2", TenantID: "tenant1", AccountID: stringPtr("acc1"), ConversationID: "conv2", Title: ""},
		}, nil)
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	m.client.EXPECT().
		GetConversationReferral(gomock.Any(), "conv1", "token").
		Return(nil, assert.AnError)
	m.client.EXPECT().
		GetConversationReferral(gomock.Any(), "conv2", "token").
		Return(&metadomain.Referral{AdID: "ad-ext"}, nil)
	m.ads.EXPECT().
		GetByExternalID(gomock.Any(), "acc1", "ad-ext").
		Return(&domain.Ad{ID: "ad-int"}, nil)
	m.leads.EXPECT().
		Attribute(gomock.Any(), "lead2", "ad-int", domain.LeadAttributedByReferral).
		Return(true, nil)

	attributed, err := service.AttributeLeads(context.Background(), "tenant1")
	require.NoError(t, err)
	assert.Equal(t, 1, attributed)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "summer promo sale", normalizeTitle("  SUMMER   Promo sale "))
	assert.Equal(t, "", normalizeTitle("   "))
}
