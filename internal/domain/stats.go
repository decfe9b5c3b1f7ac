package domain

import "time"

// UserStatsSnapshot is the cached aggregate derived from a user's full completion history.
type UserStatsSnapshot struct {
	CurrentStreak        int     `json:"currentStreak"`
	LongestStreak        int     `json:"longestStreak"`
	TotalQuestsCompleted int     `json:"totalQuestsCompleted"`
	TotalDaysActive      int     `json:"totalDaysActive"`
	LastActiveDate       *string `json:"lastActiveDate"`
}

// StoredStats is a snapshot as persisted, with its owner and write time.
type StoredStats struct {
	UserStatsSnapshot
	UserID    string    `json:"userId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayHistory summarises one calendar day of assignments.
type DayHistory struct {
	Date      string       `json:"date"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Quests    []DailyQuest `json:"quests"`
}

// StatsOverview is the payload of the stats endpoint.
type StatsOverview struct {
	Stats        UserStatsSnapshot `json:"stats"`
	History      []DayHistory      `json:"history"`
	Achievements []Achievement     `json:"achievements"`
}

// ExportBundle is a full data export for a user.
type ExportBundle struct {
	ExportDate   time.Time         `json:"exportDate"`
	User         User              `json:"user"`
	Stats        UserStatsSnapshot `json:"stats"`
	Quests       []Quest           `json:"quests"`
	History      []DayHistory      `json:"history"`
	Achievements []Achievement     `json:"achievements"`
	Settings     UserSettings      `json:"settings"`
}
