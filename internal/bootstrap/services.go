package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SideQuest_Go/internal/auth"
	"github.com/osse101/SideQuest_Go/internal/config"
	"github.com/osse101/SideQuest_Go/internal/daily"
	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/export"
	"github.com/osse101/SideQuest_Go/internal/quest"
	"github.com/osse101/SideQuest_Go/internal/settings"
	"github.com/osse101/SideQuest_Go/internal/stats"
	"github.com/osse101/SideQuest_Go/internal/streak"
)

// Services holds the application services
type Services struct {
	Auth     auth.Service
	Quests   quest.Service
	Daily    daily.Service
	Stats    stats.Service
	Settings settings.Service
	Export   export.Service
}

// InitializeServices wires the services to their repositories and the event bus.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) (*Services, error) {
	policy, err := streak.ParsePolicy(cfg.StreakPolicy)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidStreakPolicy, err)
	}

	settingsSvc := settings.NewService(repos.Settings, settings.CacheConfig{
		Size: cfg.SettingsCacheSize,
		TTL:  cfg.SettingsCacheTTL,
	})
	statsSvc := stats.NewService(repos.Stats, settingsSvc, streak.NewEngine(policy, cfg.DailyQuestCount), bus)
	questSvc := quest.NewService(repos.Quest, bus)
	authSvc := auth.NewService(repos.User, auth.NewTokenManager(cfg.JWTSecret), auth.Options{
		SessionTTL: cfg.SessionTTL,
		BcryptCost: cfg.BcryptCost,
	})

	svc := &Services{
		Auth:     authSvc,
		Quests:   questSvc,
		Daily:    daily.NewService(repos.Quest, settingsSvc, statsSvc, bus, cfg.DailyQuestCount),
		Stats:    statsSvc,
		Settings: settingsSvc,
		Export:   export.NewService(authSvc, statsSvc, questSvc, settingsSvc),
	}

	slog.Info(LogMsgServicesInitialized,
		"streak_policy", policy.String(),
		"daily_quest_count", cfg.DailyQuestCount)
	return svc, nil
}
