package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SideQuest_Go/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User     *postgres.UserRepository
	Quest    *postgres.QuestRepository
	Stats    *postgres.StatsRepository
	Settings *postgres.SettingsRepository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     postgres.NewUserRepository(dbPool),
		Quest:    postgres.NewQuestRepository(dbPool),
		Stats:    postgres.NewStatsRepository(dbPool),
		Settings: postgres.NewSettingsRepository(dbPool),
	}
}
