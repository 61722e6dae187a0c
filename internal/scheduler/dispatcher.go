package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/domain"
	"github.com/adsight/ads-sync-api/internal/usecases/aggregating"
	"github.com/adsight/ads-sync-api/internal/usecases/entitysync"
	"github.com/adsight/ads-sync-api/internal/usecases/insightsync"
	"github.com/adsight/ads-sync-api/internal/usecases/leadsync"
	"github.com/adsight/ads-sync-api/internal/usecases/notifying"
	"github.com/adsight/ads-sync-api/pkg/metrics"
	"github.com/adsight/ads-sync-api/pkg/utils"
)

var ErrSyncInProgress = errors.New("a dispatch is already running")

// Status is the dispatcher's observable state.
type Status struct {
	Running         bool                   `json:"running"`
	LastStartedAt   *time.Time             `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time             `json:"last_completed_at,omitempty"`
	LastResult      *domain.DispatchResult `json:"last_result,omitempty"`
}

// DispatcherService runs the hourly tick: expands cron settings into per
// tenant work plans, fans out over accounts, then aggregates and notifies.
// One dispatch runs at a time per process.
type DispatcherService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config

	cronSettingRepository repository.CronSettingRepository
	accountRepository     repository.AccountRepository
	branchRepository      repository.BranchRepository

	entitySyncer  entitysync.EntitySyncer
	insightSyncer insightsync.InsightSyncer
	aggregator    aggregating.Aggregator
	leadSyncer    leadsync.LeadSyncer
	notifier      notifying.Notifier

	syncRunning     bool
	syncMutex       sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResult      *domain.DispatchResult

	// Touched only while the single-run gate is held.
	lastPrunedDay time.Time
}

func NewDispatcherService(
	cfg *config.Config,
	cronSettingRepo repository.CronSettingRepository,
	accountRepo repository.AccountRepository,
	branchRepo repository.BranchRepository,
	entitySyncer entitysync.EntitySyncer,
	insightSyncer insightsync.InsightSyncer,
	aggregator aggregating.Aggregator,
	leadSyncer leadsync.LeadSyncer,
	notifier notifying.Notifier,
) *DispatcherService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":    cfg.Dispatcher.CronSchedule,
		"utc_offset_hours": cfg.Dispatcher.UTCOffsetHours,
		"lookback_days":    cfg.Dispatcher.LookbackDays,
		"max_concurrent":   cfg.Dispatcher.MaxConcurrentAccounts,
		"enabled":          cfg.Dispatcher.Enabled,
	}).Info("dispatcher configuration loaded")

	return &DispatcherService{
		scheduler:             gocron.NewScheduler(time.UTC),
		cfg:                   cfg,
		cronSettingRepository: cronSettingRepo,
		accountRepository:     accountRepo,
		branchRepository:      branchRepo,
		entitySyncer:          entitySyncer,
		insightSyncer:         insightSyncer,
		aggregator:            aggregator,
		leadSyncer:            leadSyncer,
		notifier:              notifier,
	}
}

func (s *DispatcherService) Start(ctx context.Context) error {
	if !s.cfg.Dispatcher.Enabled {
		logrus.Info("dispatcher disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.Dispatcher.CronSchedule).Do(func() {
		if _, err := s.RunDispatch(context.Background(), domain.DispatchOptions{}); err != nil {
			if !errors.Is(err, ErrSyncInProgress) {
				logrus.WithError(err).Error("scheduled dispatch failed")
			}
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling dispatch: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping dispatcher")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs a dispatch outside the schedule. Force bypasses the
// allowed-hours gating of cron settings but never the single-run guard.
func (s *DispatcherService) TriggerManualSync(ctx context.Context, opts domain.DispatchOptions) (*domain.DispatchResult, error) {
	return s.RunDispatch(ctx, opts)
}

func (s *DispatcherService) GetStatus() *Status {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &Status{
		Running:    s.syncRunning,
		LastResult: s.lastResult,
	}
	if !s.lastStartedAt.IsZero() {
		started := s.lastStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastCompletedAt.IsZero() {
		completed := s.lastCompletedAt
		status.LastCompletedAt = &completed
	}
	return status
}

func (s *DispatcherService) RunDispatch(ctx context.Context, opts domain.DispatchOptions) (*domain.DispatchResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastStartedAt = time.Now().UTC()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastCompletedAt = time.Now().UTC()
		s.syncMutex.Unlock()
	}()

	hour := utils.LocalHour(time.Now().UTC(), s.cfg.Dispatcher.UTCOffsetHours)
	if opts.Hour != nil {
		hour = *opts.Hour
	}

	start, end := s.window(opts)

	result := &domain.DispatchResult{
		StartedAt: time.Now().UTC(),
		Hour:      hour,
		Forced:    opts.Force,
	}

	plans, err := s.buildPlans(ctx, opts, hour)
	if err != nil {
		metrics.DispatchRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"hour":    hour,
		"tenants": len(plans),
		"start":   start.Format(time.DateOnly),
		"end":     end.Format(time.DateOnly),
	}).Info("dispatch started")

	for _, plan := range plans {
		tenantResult := s.syncTenant(ctx, plan.tenantID, plan.flags, start, end)
		result.Tenants = append(result.Tenants, tenantResult)
	}

	s.pruneIfDue(ctx)

	result.CompletedAt = time.Now().UTC()

	if result.ErrorCount() > 0 {
		metrics.DispatchRuns.WithLabelValues("partial").Inc()
	} else {
		metrics.DispatchRuns.WithLabelValues("ok").Inc()
	}

	s.notifier.NotifyDispatchResult(ctx, result)

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": result.CompletedAt.Sub(result.StartedAt).String(),
		"tenants":  len(result.Tenants),
		"errors":   result.ErrorCount(),
	}).Info("dispatch completed")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug(utils.PrettyJson(result))
	}

	return result, nil
}

// pruneIfDue runs hourly retention as daily housekeeping: the first dispatch
// of each calendar day prunes, later ticks skip. A failed prune retries on
// the next tick.
func (s *DispatcherService) pruneIfDue(ctx context.Context) {
	today := utils.TruncateToDay(time.Now().UTC())
	if !s.lastPrunedDay.Before(today) {
		return
	}

	pruned, err := s.insightSyncer.PruneHourly(ctx)
	if err != nil {
		logrus.WithError(err).Warn("hourly retention pruning failed")
		return
	}

	s.lastPrunedDay = today
	if pruned > 0 {
		logrus.WithField("rows", pruned).Info("hourly rows pruned")
	}
}

type tenantPlan struct {
	tenantID string
	flags    domain.SyncFlags
}

// buildPlans loads cron settings fresh and expands them into one work plan
// per due tenant. Settings are re-read every tick so edits apply without a
// restart.
func (s *DispatcherService) buildPlans(ctx context.Context, opts domain.DispatchOptions, hour int) ([]tenantPlan, error) {
	settings, err := s.cronSettingRepository.ListEnabled(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading cron settings")
	}

	requested := make(map[domain.SyncType]bool, len(opts.Types))
	for _, t := range opts.Types {
		requested[t] = true
	}

	flagsByTenant := make(map[string]*domain.SyncFlags)
	for _, setting := range settings {
		if opts.TenantID != "" && setting.TenantID != opts.TenantID {
			continue
		}
		if len(requested) > 0 && !requested[setting.SyncType] {
			continue
		}
		if !opts.Force && !setting.MatchesHour(hour) {
			continue
		}

		flags, ok := flagsByTenant[setting.TenantID]
		if !ok {
			flags = &domain.SyncFlags{}
			flagsByTenant[setting.TenantID] = flags
		}
		flags.Merge(domain.FlagsForType(setting.SyncType))
	}

	plans := make([]tenantPlan, 0, len(flagsByTenant))
	for tenantID, flags := range flagsByTenant {
		if flags.Any() {
			plans = append(plans, tenantPlan{tenantID: tenantID, flags: *flags})
		}
	}

	sort.Slice(plans, func(i, j int) bool { return plans[i].tenantID < plans[j].tenantID })
	return plans, nil
}

func (s *DispatcherService) window(opts domain.DispatchOptions) (time.Time, time.Time) {
	end := utils.TruncateToDay(time.Now().UTC())
	if opts.EndDate != nil {
		end = utils.TruncateToDay(*opts.EndDate)
	}

	start := end.AddDate(0, 0, -s.cfg.Dispatcher.LookbackDays)
	if opts.StartDate != nil {
		start = utils.TruncateToDay(*opts.StartDate)
	}

	return start, end
}

type branchDateKey struct {
	branchID string
	platform domain.PlatformCode
	date     time.Time
}

// syncTenant runs one tenant's plan. Account failures are captured, never
// propagated: one broken token cannot stall the other accounts or tenants.
func (s *DispatcherService) syncTenant(ctx context.Context, tenantID string, flags domain.SyncFlags, start, end time.Time) *domain.TenantSyncResult {
	result := &domain.TenantSyncResult{TenantID: tenantID, Flags: flags}

	accounts, err := s.accountRepository.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		result.Errors = append(result.Errors, domain.SyncError{
			TenantID: tenantID, Stage: "load_accounts", Message: err.Error(),
		})
		return result
	}
	result.Accounts = len(accounts)

	s.autoAssignBranches(ctx, tenantID, accounts)

	width := s.cfg.Dispatcher.MaxConcurrentAccounts
	if width <= 0 {
		width = 1
	}

	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		sem         = make(chan struct{}, width)
		branchDates = make(map[branchDateKey]bool)
	)

	for _, account := range accounts {
		wg.Add(1)
		sem <- struct{}{}

		go func(account *domain.Account) {
			defer wg.Done()
			defer func() { <-sem }()

			accountResult := s.syncAccount(ctx, account, flags, start, end)

			mu.Lock()
			defer mu.Unlock()

			result.Entities.Merge(accountResult.entities)
			result.Insights.Merge(accountResult.insights)
			result.Errors = append(result.Errors, accountResult.errors...)

			if account.BranchID != nil && accountResult.insights != nil {
				for _, date := range accountResult.insights.DatesTouched {
					branchDates[branchDateKey{
						branchID: *account.BranchID,
						platform: account.Platform,
						date:     utils.TruncateToDay(date),
					}] = true
				}
			}
		}(account)
	}

	wg.Wait()

	s.aggregateBranches(ctx, result, branchDates)

	if flags.Leads {
		attributed, err := s.leadSyncer.AttributeLeads(ctx, tenantID)
		if err != nil {
			result.Errors = append(result.Errors, domain.SyncError{
				TenantID: tenantID, Stage: "leads", Message: err.Error(),
			})
		}
		result.LeadsAttributed = attributed
	}

	return result
}

type accountSyncResult struct {
	entities *domain.EntitySyncResult
	insights *domain.InsightSyncResult
	errors   []domain.SyncError
}

func (s *DispatcherService) syncAccount(ctx context.Context, account *domain.Account, flags domain.SyncFlags, start, end time.Time) *accountSyncResult {
	result := &accountSyncResult{insights: &domain.InsightSyncResult{}}

	fail := func(stage string, err error) {
		metrics.AccountSyncFailures.WithLabelValues(stage).Inc()
		result.errors = append(result.errors, domain.SyncError{
			TenantID:  account.TenantID,
			AccountID: account.ID,
			Stage:     stage,
			Message:   err.Error(),
		})
	}

	if flags.Structural || flags.Ads {
		entities, err := s.entitySyncer.SyncAccount(ctx, account, false)
		if err != nil {
			fail("entities", err)
			if errors.Is(err, entitysync.ErrAccountDisconnected) {
				return result
			}
		}
		result.entities = entities
	}

	if flags.DailyInsight {
		daily, err := s.insightSyncer.SyncDaily(ctx, account, start, end)
		if err != nil {
			fail("daily", err)
			if errors.Is(err, entitysync.ErrAccountDisconnected) {
				return result
			}
		} else {
			result.insights.Merge(daily)
		}
	}

	if flags.HourlyInsight {
		hourly, err := s.insightSyncer.SyncHourly(ctx, account, utils.TruncateToDay(time.Now().UTC()))
		if err != nil {
			fail("hourly", err)
		} else {
			result.insights.Merge(hourly)
		}
	}

	if flags.Breakdowns {
		breakdowns, err := s.insightSyncer.SyncBreakdowns(ctx, account, start, end)
		if err != nil {
			fail("breakdowns", err)
		} else {
			result.insights.Merge(breakdowns)
		}
	}

	return result
}

// autoAssignBranches links unassigned accounts to the first branch whose
// keyword appears in the account name.
func (s *DispatcherService) autoAssignBranches(ctx context.Context, tenantID string, accounts []*domain.Account) {
	unassigned := make([]*domain.Account, 0)
	for _, account := range accounts {
		if account.BranchID == nil {
			unassigned = append(unassigned, account)
		}
	}
	if len(unassigned) == 0 {
		return
	}

	branches, err := s.branchRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Warn("could not load branches for auto-assignment")
		return
	}

	for _, account := range unassigned {
		name := strings.ToLower(account.Name)
		for _, branch := range branches {
			if branch.Keyword == "" || !strings.Contains(name, strings.ToLower(branch.Keyword)) {
				continue
			}

			if err := s.accountRepository.UpdateBranch(ctx, account.ID, &branch.ID); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id": account.ID,
					"branch_id":  branch.ID,
				}).Warn("branch auto-assignment failed")
				break
			}

			account.BranchID = &branch.ID
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"branch_id":  branch.ID,
				"keyword":    branch.Keyword,
			}).Info("account auto-assigned to branch")
			break
		}
	}
}

func (s *DispatcherService) aggregateBranches(ctx context.Context, result *domain.TenantSyncResult, branchDates map[branchDateKey]bool) {
	touched := make(map[string]bool)
	for key := range branchDates {
		if _, err := s.aggregator.RecomputeBranch(ctx, key.branchID, key.platform, key.date); err != nil {
			result.Errors = append(result.Errors, domain.SyncError{
				TenantID: result.TenantID,
				Stage:    "aggregation",
				Message:  fmt.Sprintf("branch %s date %s: %v", key.branchID, key.date.Format(time.DateOnly), err),
			})
			continue
		}
		touched[key.branchID] = true
	}

	for branchID := range touched {
		result.BranchesTouched = append(result.BranchesTouched, branchID)
	}
	sort.Strings(result.BranchesTouched)
}
