package auth

import "github.com/osse101/SideQuest_Go/internal/repository"

// Repository is a local interface for account and session persistence
type Repository interface {
	repository.User
	repository.Session
}
