package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	Version     string
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	AutoMigrate       bool

	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	DailyQuestCount int
	StreakPolicy    string

	SettingsCacheSize int
	SettingsCacheTTL  time.Duration

	SessionCleanupInterval time.Duration
	WorkerCount            int

	TrustedProxies []string

	// Redis is optional; an empty address keeps realtime events in-process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:       getEnv("APP_VERSION", DefaultVersion),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:        getEnv("LOG_DIR", DefaultLogDir),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "sidequest"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		StreakPolicy:  strings.ToLower(getEnv("STREAK_POLICY", StreakPolicyStrict)),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisChannel:  getEnv("REDIS_CHANNEL", DefaultRedisChannel),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", DefaultBcryptCost); err != nil {
		return nil, err
	}
	if cfg.DailyQuestCount, err = getEnvInt("DAILY_QUEST_COUNT", DefaultDailyQuestCount); err != nil {
		return nil, err
	}
	if cfg.SettingsCacheSize, err = getEnvInt("SETTINGS_CACHE_SIZE", DefaultSettingsCacheSize); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = getEnvInt("WORKER_COUNT", DefaultWorkerCount); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdleTime, err = getEnvDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.SettingsCacheTTL, err = getEnvDuration("SETTINGS_CACHE_TTL", DefaultSettingsCacheTTL); err != nil {
		return nil, err
	}
	if cfg.SessionCleanupInterval, err = getEnvDuration("SESSION_CLEANUP_INTERVAL", DefaultSessionCleanupInterval); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = getEnvBool("AUTO_MIGRATE", true); err != nil {
		return nil, err
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	if cfg.StreakPolicy != StreakPolicyStrict && cfg.StreakPolicy != StreakPolicyGrace {
		return nil, fmt.Errorf("invalid STREAK_POLICY %q: expected %q or %q", cfg.StreakPolicy, StreakPolicyStrict, StreakPolicyGrace)
	}
	if cfg.DailyQuestCount < 1 {
		return nil, fmt.Errorf("DAILY_QUEST_COUNT must be positive, got %d", cfg.DailyQuestCount)
	}

	return cfg, nil
}

// LoadDatabase loads only the connection settings, for tools that never
// serve requests and so need no JWT secret.
func LoadDatabase() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "sidequest"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
	}
	var err error
	if cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// RedisEnabled reports whether realtime events should be relayed through Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}
