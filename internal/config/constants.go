package config

import "time"

// Defaults
const (
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultSessionTTL             = 30 * 24 * time.Hour
	DefaultBcryptCost             = 10
	DefaultDailyQuestCount        = 3
	DefaultSettingsCacheSize      = 1000
	DefaultSettingsCacheTTL       = 10 * time.Minute
	DefaultSessionCleanupInterval = time.Hour
	DefaultWorkerCount            = 2
	DefaultRedisChannel           = "sidequest:events"

	MinJWTSecretLength = 32
)

// Environments
const (
	EnvironmentProduction = "prod"
)

// Streak policies for counting the current streak while today is still open
const (
	StreakPolicyStrict = "strict"
	StreakPolicyGrace  = "grace"
)
