package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/adsight/ads-sync-api/infrastructure/repository/mocks"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
	aggregatingmocks "github.com/adsight/ads-sync-api/internal/usecases/aggregating/mocks"
	entitymocks "github.com/adsight/ads-sync-api/internal/usecases/entitysync/mocks"
	insightmocks "github.com/adsight/ads-sync-api/internal/usecases/insightsync/mocks"
	leadmocks "github.com/adsight/ads-sync-api/internal/usecases/leadsync/mocks"
	notifyingmocks "github.com/adsight/ads-sync-api/internal/usecases/notifying/mocks"
	"go.uber.org/mock/gomock"
)

type dispatcherMocks struct {
	cronSettings  *mocks.MockCronSettingRepository
	accounts      *mocks.MockAccountRepository
	branches      *mocks.MockBranchRepository
	entitySyncer  *entitymocks.MockEntitySyncer
	insightSyncer *insightmocks.MockInsightSyncer
	aggregator    *aggregatingmocks.MockAggregator
	leadSyncer    *leadmocks.MockLeadSyncer
	notifier      *notifyingmocks.MockNotifier
}

func newDispatcher(ctrl *gomock.Controller) (*DispatcherService, *dispatcherMocks) {
	m := &dispatcherMocks{
		cronSettings:  mocks.NewMockCronSettingRepository(ctrl),
		accounts:      mocks.NewMockAccountRepository(ctrl),
		branches:      mocks.NewMockBranchRepository(ctrl),
		entitySyncer:  entitymocks.NewMockEntitySyncer(ctrl),
		insightSyncer: insightmocks.NewMockInsightSyncer(ctrl),
		aggregator:    aggregatingmocks.NewMockAggregator(ctrl),
		leadSyncer:    leadmocks.NewMockLeadSyncer(ctrl),
		notifier:      notifyingmocks.NewMockNotifier(ctrl),
	}

	cfg := &config.Config{}
	cfg.Dispatcher.LookbackDays = 2
	cfg.Dispatcher.MaxConcurrentAccounts = 2
	cfg.Dispatcher.HourlyMaxConcurrent = 4

	service := &DispatcherService{
		cfg:                   cfg,
		cronSettingRepository: m.cronSettings,
		accountRepository:     m.accounts,
		branchRepository:      m.branches,
		entitySyncer:          m.entitySyncer,
		insightSyncer:         m.insightSyncer,
		aggregator:            m.aggregator,
		leadSyncer:            m.leadSyncer,
		notifier:              m.notifier,
	}

	return service, m
}

func intPtr(i int) *int { return &i }

func branchAccount(id, tenantID, branchID string) *domain.Account {
	return &domain.Account{
		ID:          id,
		ExternalID:  "ext-" + id,
		TenantID:    tenantID,
		Platform:    domain.PlatformFacebook,
		Name:        "Account " + id,
		Status:      domain.AccountStatusActive,
		BranchID:    &branchID,
		AccessToken: "token",
	}
}

func TestRunDispatchHonorsAllowedHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	m.cronSettings.EXPECT().ListEnabled(gomock.Any()).Return([]*domain.CronSetting{
		{TenantID: "tenant1", SyncType: domain.SyncTypeDaily, AllowedHours: []int{14}, Enabled: true},
		{TenantID: "tenant2", SyncType: domain.SyncTypeDaily, AllowedHours: []int{5}, Enabled: true},
	}, nil)

	account := branchAccount("acc1", "tenant1", "br1")
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	m.insightSyncer.EXPECT().
		SyncDaily(gomock.Any(), account, gomock.Any(), gomock.Any()).
		Return(&domain.InsightSyncResult{Rows: 10, DatesTouched: []time.Time{date}}, nil)
	m.aggregator.EXPECT().
		RecomputeBranch(gomock.Any(), "br1", domain.PlatformFacebook, date).
		Return(&domain.BranchDailyStat{BranchID: "br1"}, nil)
	m.insightSyncer.EXPECT().PruneHourly(gomock.Any()).Return(int64(0), nil)
	m.notifier.EXPECT().NotifyDispatchResult(gomock.Any(), gomock.Any())

	result, err := service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(14)})
	require.NoError(t, err)

	// tenant2 is not due at hour 14 and must not be touched.
	require.Len(t, result.Tenants, 1)
	assert.Equal(t, "tenant1", result.Tenants[0].TenantID)
	assert.Equal(t, 10, result.Tenants[0].Insights.Rows)
	assert.Equal(t, []string{"br1"}, result.Tenants[0].BranchesTouched)
	assert.Equal(t, 0, result.ErrorCount())
}

func TestRunDispatchForceBypassesHourGating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	m.cronSettings.EXPECT().ListEnabled(gomock.Any()).Return([]*domain.CronSetting{
		{TenantID: "tenant1", SyncType: domain.SyncTypeDaily, AllowedHours: []int{5}, Enabled: true},
	}, nil)

	account := branchAccount("acc1", "tenant1", "br1")
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)
	m.insightSyncer.EXPECT().
		SyncDaily(gomock.Any(), account, gomock.Any(), gomock.Any()).
		Return(&domain.InsightSyncResult{}, nil)
	m.insightSyncer.EXPECT().PruneHourly(gomock.Any()).Return(int64(0), nil)
	m.notifier.EXPECT().NotifyDispatchResult(gomock.Any(), gomock.Any())

	result, err := service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(14), Force: true})
	require.NoError(t, err)
	require.Len(t, result.Tenants, 1)
	assert.True(t, result.Forced)
}

func TestRunDispatchIsolatesTenantFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	m.cronSettings.EXPECT().ListEnabled(gomock.Any()).Return([]*domain.CronSetting{
		{TenantID: "tenant1", SyncType: domain.SyncTypeDaily, Enabled: true},
		{TenantID: "tenant2", SyncType: domain.SyncTypeDaily, Enabled: true},
	}, nil)

	broken := branchAccount("acc1", "tenant1", "br1")
	healthy := branchAccount("acc2", "tenant2", "br2")

	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{broken}, nil)
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant2").Return([]*domain.Account{healthy}, nil)

	m.insightSyncer.EXPECT().
		SyncDaily(gomock.Any(), broken, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	m.insightSyncer.EXPECT().
		SyncDaily(gomock.Any(), healthy, gomock.Any(), gomock.Any()).
		Return(&domain.InsightSyncResult{Rows: 7}, nil)

	m.insightSyncer.EXPECT().PruneHourly(gomock.Any()).Return(int64(0), nil)
	m.notifier.EXPECT().NotifyDispatchResult(gomock.Any(), gomock.Any())

	result, err := service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(10)})
	require.NoError(t, err)
	require.Len(t, result.Tenants, 2)

	assert.Len(t, result.Tenants[0].Errors, 1)
	assert.Equal(t, "daily", result.Tenants[0].Errors[0].Stage)
	assert.Equal(t, 7, result.Tenants[1].Insights.Rows)
	assert.Empty(t, result.Tenants[1].Errors)
}

func TestRunDispatchRejectsConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newDispatcher(ctrl)
	service.syncRunning = true

	_, err := service.RunDispatch(context.Background(), domain.DispatchOptions{})
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestRunDispatchExpandsFullFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	m.cronSettings.EXPECT().ListEnabled(gomock.Any()).Return([]*domain.CronSetting{
		{TenantID: "tenant1", SyncType: domain.SyncTypeFull, Enabled: true},
	}, nil)

	account := branchAccount("acc1", "tenant1", "br1")
	m.accounts.EXPECT().ListActiveByTenant(gomock.Any(), "tenant1").Return([]*domain.Account{account}, nil)

	m.entitySyncer.EXPECT().
		SyncAccount(gomock.Any(), account, false).
		Return(&domain.EntitySyncResult{Campaigns: 2}, nil)
	m.insightSyncer.EXPECT().
		SyncDaily(gomock.Any(), account, gomock.Any(), gomock.Any()).
		Return(&domain.InsightSyncResult{Rows: 5}, nil)
	m.insightSyncer.EXPECT().
		SyncHourly(gomock.Any(), account, gomock.Any()).
		Return(&domain.InsightSyncResult{HourlyRows: 3}, nil)
	m.insightSyncer.EXPECT().
		SyncBreakdowns(gomock.Any(), account, gomock.Any(), gomock.Any()).
		Return(&domain.InsightSyncResult{Breakdowns: 4}, nil)
	m.leadSyncer.EXPECT().AttributeLeads(gomock.Any(), "tenant1").Return(2, nil)

	m.insightSyncer.EXPECT().PruneHourly(gomock.Any()).Return(int64(11), nil)
	m.notifier.EXPECT().NotifyDispatchResult(gomock.Any(), gomock.Any())

	result, err := service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(9)})
	require.NoError(t, err)

	tenant := result.Tenants[0]
	assert.Equal(t, 2, tenant.Entities.Campaigns)
	assert.Equal(t, 5, tenant.Insights.Rows)
	assert.Equal(t, 3, tenant.Insights.HourlyRows)
	assert.Equal(t, 4, tenant.Insights.Breakdowns)
	assert.Equal(t, 2, tenant.LeadsAttributed)
}

func TestRunDispatchPrunesOncePerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	m.cronSettings.EXPECT().ListEnabled(gomock.Any()).Return(nil, nil).Times(2)
	m.notifier.EXPECT().NotifyDispatchResult(gomock.Any(), gomock.Any()).Times(2)

	// Retention housekeeping is daily: only the first tick of the day prunes.
	m.insightSyncer.EXPECT().PruneHourly(gomock.Any()).Return(int64(9), nil)

	_, err := service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(0)})
	require.NoError(t, err)

	_, err = service.RunDispatch(context.Background(), domain.DispatchOptions{Hour: intPtr(1)})
	require.NoError(t, err)
}

func TestAutoAssignBranchesByKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatcher(ctrl)

	unassigned := &domain.Account{
		ID:       "acc1",
		TenantID: "tenant1",
		Name:     "IVS Florianópolis Store",
		Platform: domain.PlatformFacebook,
	}

	m.branches.EXPECT().ListByTenant(gomock.Any(), "tenant1").Return([]*domain.Branch{
		{ID: "br-north", TenantID: "tenant1", Keyword: "curitiba"},
		{ID: "br-south", TenantID: "tenant1", Keyword: "florianópolis"},
	}, nil)
	m.accounts.EXPECT().UpdateBranch(gomock.Any(), "acc1", gomock.Any()).Return(nil)

	service.autoAssignBranches(context.Background(), "tenant1", []*domain.Account{unassigned})

	require.NotNil(t, unassigned.BranchID)
	assert.Equal(t, "br-south", *unassigned.BranchID)
}

func TestAutoAssignBranchesSkipsAssignedAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newDispatcher(ctrl)

	assigned := branchAccount("acc1", "tenant1", "br1")

	// No branch listing happens when every account already has a branch.
	service.autoAssignBranches(context.Background(), "tenant1", []*domain.Account{assigned})
	assert.Equal(t, "br1", *assigned.BranchID)
}
