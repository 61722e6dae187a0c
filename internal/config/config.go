package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Dispatcher   Dispatcher   `mapstructure:",squash"`
	Insights     Insights     `mapstructure:",squash"`
	Leads        Leads        `mapstructure:",squash"`
	Notification Notification `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL         string `mapstructure:"meta_base_url"`
	URL             string `mapstructure:"-"`
	Version         string `mapstructure:"meta_version"`
	PageSize        int    `mapstructure:"meta_page_size"`
	MaxAttempts     int    `mapstructure:"meta_max_attempts"`
	PageDelayMillis int    `mapstructure:"meta_page_delay_millis"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dispatcher drives the hourly sync fan-out across tenants and accounts.
type Dispatcher struct {
	CronSchedule          string `mapstructure:"dispatcher_cron"`
	UTCOffsetHours        int    `mapstructure:"dispatcher_utc_offset_hours"`
	LookbackDays          int    `mapstructure:"dispatcher_lookback_days"`
	MaxConcurrentAccounts int    `mapstructure:"dispatcher_max_concurrent_accounts"`
	HourlyMaxConcurrent   int    `mapstructure:"dispatcher_hourly_max_concurrent"`
	Enabled               bool   `mapstructure:"dispatcher_enabled"`
}

type Insights struct {
	ResultsActionPriority []string `mapstructure:"results_action_priority"`
	HourlyRetentionDays   int      `mapstructure:"hourly_retention_days"`
}

type Leads struct {
	LookupDelayMillis int `mapstructure:"lead_lookup_delay_millis"`
}

type Notification struct {
	WebhookURL string `mapstructure:"notification_webhook_url"`
	Enabled    bool   `mapstructure:"notification_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_sync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_PAGE_SIZE", 100)
	viper.SetDefault("META_MAX_ATTEMPTS", 3)
	viper.SetDefault("META_PAGE_DELAY_MILLIS", 500)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("DISPATCHER_CRON", "0 * * * *")
	viper.SetDefault("DISPATCHER_UTC_OFFSET_HOURS", 7)
	viper.SetDefault("DISPATCHER_LOOKBACK_DAYS", 3)
	viper.SetDefault("DISPATCHER_MAX_CONCURRENT_ACCOUNTS", 5)
	viper.SetDefault("DISPATCHER_HOURLY_MAX_CONCURRENT", 30)
	viper.SetDefault("DISPATCHER_ENABLED", false)

	viper.SetDefault("RESULTS_ACTION_PRIORITY",
		"onsite_conversion.total_messaging_connection,onsite_conversion.messaging_conversation_started_7d,omni_purchase,lead,link_click")
	viper.SetDefault("HOURLY_RETENTION_DAYS", 30)

	viper.SetDefault("LEAD_LOOKUP_DELAY_MILLIS", 500)

	viper.SetDefault("NOTIFICATION_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFICATION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables only (no .env readable by viper): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}
}
