package config

import (
	"strings"
	"time"

	"schememonitor/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	Minio       MinioConfig
	RateLimiter RateLimiterConfig
	SMDP        SMDPConfig
	Tourism     TourismConfig
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	USE_SSL    bool
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// SMDPConfig points at the provincial CFY review dashboard, queried by GS
// number for financial figures.
type SMDPConfig struct {
	URL          string
	BEARER_TOKEN string
}

// TourismConfig points at the tourism project-tracking API used for field
// reports and project structure reads.
type TourismConfig struct {
	PROJECTS_URL string
	REPORTS_URL  string
	BEARER_TOKEN string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimitTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimitTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8000"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "report_db"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimitTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		SMDP: SMDPConfig{
			URL:          env.GetString("SMDP_API_URL", "https://smdpservice.punjab.gov.pk/api/CFYReviewDashboard/GetCFYReviewDashboardListSection"),
			BEARER_TOKEN: env.GetString("SMDP_BEARER_TOKEN", ""),
		},
		Tourism: TourismConfig{
			PROJECTS_URL: env.GetString("TOURISM_PROJECTS_URL", "https://tourism.datsystems.co/api/projects"),
			REPORTS_URL:  env.GetString("TOURISM_REPORTS_URL", "https://tourism.datsystems.co/api/reports"),
			BEARER_TOKEN: env.GetString("TOURISM_BEARER_TOKEN", ""),
		},
	}
}
