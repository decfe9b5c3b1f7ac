package settings

import "github.com/osse101/SideQuest_Go/internal/repository"

// Repository is a local interface for settings persistence
type Repository interface {
	repository.Settings
}
