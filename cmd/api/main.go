package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/adsight/ads-sync-api/infrastructure/database/postgres"
	"github.com/adsight/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsight/ads-sync-api/infrastructure/repository"
	"github.com/adsight/ads-sync-api/internal/api"
	"github.com/adsight/ads-sync-api/internal/config"
	"github.com/adsight/ads-sync-api/internal/scheduler"
	"github.com/adsight/ads-sync-api/internal/usecases/aggregating"
	"github.com/adsight/ads-sync-api/internal/usecases/entitysync"
	"github.com/adsight/ads-sync-api/internal/usecases/insightsync"
	"github.com/adsight/ads-sync-api/internal/usecases/leadsync"
	"github.com/adsight/ads-sync-api/internal/usecases/notifying"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	branchRepo := repository.NewBranchRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adGroupRepo := repository.NewAdGroupRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	hourlyInsightRepo := repository.NewHourlyInsightRepository(pgConn)
	breakdownRepo := repository.NewInsightBreakdownRepository(pgConn)
	statRepo := repository.NewBranchDailyStatRepository(pgConn)
	cronSettingRepo := repository.NewCronSettingRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)

	entitySyncer := entitysync.NewService(
		metaClient,
		accountRepo,
		campaignRepo,
		adGroupRepo,
		adRepo,
		creativeRepo,
	)

	insightSyncer := insightsync.NewService(
		cfg,
		metaClient,
		entitySyncer,
		adRepo,
		insightRepo,
		hourlyInsightRepo,
		breakdownRepo,
	)

	aggregator := aggregating.NewService(insightRepo, statRepo)

	leadSyncer := leadsync.NewService(
		cfg,
		metaClient,
		leadRepo,
		accountRepo,
		adRepo,
		creativeRepo,
	)

	notifier := notifying.NewWebhookNotifier(cfg)

	dispatcher := scheduler.NewDispatcherService(
		cfg,
		cronSettingRepo,
		accountRepo,
		branchRepo,
		entitySyncer,
		insightSyncer,
		aggregator,
		leadSyncer,
		notifier,
	)

	if err := dispatcher.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start dispatcher")
	}

	server, err := api.New(
		cfg,
		dispatcher,
		aggregator,
		insightSyncer,
		accountRepo,
		branchRepo,
		statRepo,
		cronSettingRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to verify PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
