package domain

import "time"

// Themes
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings defaults
const (
	DefaultRefreshTime      = "04:00"
	DefaultNotificationTime = "08:00"
	DefaultNotificationText = "Time to conquer your daily quests!"
	DefaultTheme            = ThemeLight
	DefaultTimezone         = "UTC"
)

// UserSettings holds per-user preferences. RefreshTime is the local clock time at which
// "today" rolls over.
type UserSettings struct {
	UserID               string    `json:"userId"`
	RefreshTime          string    `json:"refreshTime"`
	Timezone             string    `json:"timezone"`
	NotificationEnabled  bool      `json:"notificationEnabled"`
	NotificationTime     string    `json:"notificationTime"`
	NotificationText     string    `json:"notificationText"`
	Theme                string    `json:"theme"`
	OnboardingCompleted  bool      `json:"onboardingCompleted"`
	EnabledDefaultQuests []string  `json:"enabledDefaultQuests"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings a new user starts with.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:               userID,
		RefreshTime:          DefaultRefreshTime,
		Timezone:             DefaultTimezone,
		NotificationEnabled:  true,
		NotificationTime:     DefaultNotificationTime,
		NotificationText:     DefaultNotificationText,
		Theme:                DefaultTheme,
		EnabledDefaultQuests: []string{},
	}
}

// SettingsPatch is a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	RefreshTime          *string   `json:"refreshTime,omitempty"`
	Timezone             *string   `json:"timezone,omitempty"`
	NotificationEnabled  *bool     `json:"notificationEnabled,omitempty"`
	NotificationTime     *string   `json:"notificationTime,omitempty"`
	NotificationText     *string   `json:"notificationText,omitempty"`
	Theme                *string   `json:"theme,omitempty"`
	EnabledDefaultQuests *[]string `json:"enabledDefaultQuests,omitempty"`
}

// Apply returns s with every non-nil field of p applied.
func (p SettingsPatch) Apply(s UserSettings) UserSettings {
	if p.RefreshTime != nil {
		s.RefreshTime = *p.RefreshTime
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.NotificationEnabled != nil {
		s.NotificationEnabled = *p.NotificationEnabled
	}
	if p.NotificationTime != nil {
		s.NotificationTime = *p.NotificationTime
	}
	if p.NotificationText != nil {
		s.NotificationText = *p.NotificationText
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.EnabledDefaultQuests != nil {
		s.EnabledDefaultQuests = append([]string(nil), (*p.EnabledDefaultQuests)...)
	}
	return s
}
