package domain

import "time"

// AchievementType identifies a one-time unlockable badge.
type AchievementType string

const (
	AchievementFirstQuest      AchievementType = "first_quest"
	AchievementFirstPerfectDay AchievementType = "first_perfect_day"
	AchievementStreak7         AchievementType = "streak_7"
	AchievementStreak30        AchievementType = "streak_30"
	AchievementStreak100       AchievementType = "streak_100"
	AchievementStreak200       AchievementType = "streak_200"
	AchievementStreak300       AchievementType = "streak_300"
	AchievementStreak365       AchievementType = "streak_365"
	AchievementStreak400       AchievementType = "streak_400"
)

// Achievement is an unlock record. At most one exists per (user, type).
type Achievement struct {
	ID         int64           `json:"id"`
	UserID     string          `json:"userId"`
	Type       AchievementType `json:"achievementType"`
	UnlockedAt time.Time       `json:"unlockedAt"`
}

// AchievementDefinition describes a badge for display.
type AchievementDefinition struct {
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	// StreakDays is the streak length that unlocks the badge; zero for non-streak badges.
	StreakDays int `json:"streakDays,omitempty"`
}

// AchievementCatalog lists every badge in display order.
var AchievementCatalog = []AchievementDefinition{
	{Type: AchievementFirstQuest, Title: "First Steps", Description: "Complete your first quest"},
	{Type: AchievementFirstPerfectDay, Title: "Perfect Day", Description: "Complete every quest in one day"},
	{Type: AchievementStreak7, Title: "Week Warrior", Description: "Maintain a 7-day streak", StreakDays: 7},
	{Type: AchievementStreak30, Title: "Monthly Master", Description: "Maintain a 30-day streak", StreakDays: 30},
	{Type: AchievementStreak100, Title: "Century Club", Description: "Maintain a 100-day streak", StreakDays: 100},
	{Type: AchievementStreak200, Title: "Elite Achiever", Description: "Maintain a 200-day streak", StreakDays: 200},
	{Type: AchievementStreak300, Title: "Legend Status", Description: "Maintain a 300-day streak", StreakDays: 300},
	{Type: AchievementStreak365, Title: "Year Champion", Description: "Maintain a 365-day streak", StreakDays: 365},
	{Type: AchievementStreak400, Title: "Beyond Limits", Description: "Maintain a 400+ day streak", StreakDays: 400},
}

// IsValid reports whether t is a known achievement type.
func (t AchievementType) IsValid() bool {
	for _, def := range AchievementCatalog {
		if def.Type == t {
			return true
		}
	}
	return false
}

// AchievementStatus pairs a catalog entry with the user's unlock state.
type AchievementStatus struct {
	AchievementDefinition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
