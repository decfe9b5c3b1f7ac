package quest

import "github.com/osse101/SideQuest_Go/internal/repository"

// Repository is a local interface for quest pool persistence
type Repository interface {
	repository.Quest
}
