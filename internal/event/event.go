package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// UserID returns the user the event belongs to, or "" for broadcast events.
func (e Event) UserID() string {
	id, _ := e.GetMetadataValue(MetadataKeyUserID).(string)
	return id
}

// Common event types
const (
	AchievementUnlocked Type = "achievement.unlocked"
	DailyQuestCompleted Type = "daily.completed"
	DailySetGenerated   Type = "daily.generated"
	DailySetRerolled    Type = "daily.rerolled"
	QuestsDeleted       Type = "quests.deleted"
	StatsUpdated        Type = "stats.updated"
	SessionsPurged      Type = "sessions.purged"
)

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlocks
type AchievementUnlockedPayloadV1 struct {
	AchievementType domain.AchievementType `json:"achievement_type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	UnlockedAt      time.Time              `json:"unlocked_at"`
}

// DailyQuestCompletedPayloadV1 is the typed payload for completion toggles
type DailyQuestCompletedPayloadV1 struct {
	DailyQuestID int64  `json:"daily_quest_id"`
	QuestID      int64  `json:"quest_id"`
	Date         string `json:"date"`
	Completed    bool   `json:"completed"`
}

// DailySetGeneratedPayloadV1 is the typed payload for a freshly generated daily set
type DailySetGeneratedPayloadV1 struct {
	Date       string `json:"date"`
	QuestCount int    `json:"quest_count"`
}

// QuestsDeletedPayloadV1 is the typed payload for pool deletions
type QuestsDeletedPayloadV1 struct {
	QuestIDs []int64 `json:"quest_ids"`
	Count    int64   `json:"count"`
}

// StatsUpdatedPayloadV1 is the typed payload for recomputed statistics
type StatsUpdatedPayloadV1 struct {
	Stats domain.UserStatsSnapshot `json:"stats"`
}

// SessionsPurgedPayloadV1 is the typed payload for session cleanup runs
type SessionsPurgedPayloadV1 struct {
	PurgedAt time.Time `json:"purged_at"`
	Count    int64     `json:"count"`
}

func userMetadata(userID string) Metadata {
	return Metadata{MetadataKeyUserID: userID}
}

// NewAchievementUnlockedEvent creates an unlock event for a catalog achievement
func NewAchievementUnlockedEvent(userID string, a domain.Achievement) Event {
	payload := AchievementUnlockedPayloadV1{
		AchievementType: a.Type,
		UnlockedAt:      a.UnlockedAt,
	}
	for _, def := range domain.AchievementCatalog {
		if def.Type == a.Type {
			payload.Title = def.Title
			payload.Description = def.Description
			break
		}
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     AchievementUnlocked,
		Payload:  payload,
		Metadata: userMetadata(userID),
	}
}

// NewDailyQuestCompletedEvent creates a completion toggle event
func NewDailyQuestCompletedEvent(dq domain.DailyQuest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyQuestCompleted,
		Payload: DailyQuestCompletedPayloadV1{
			DailyQuestID: dq.ID,
			QuestID:      dq.QuestID,
			Date:         dq.Date,
			Completed:    dq.Completed,
		},
		Metadata: userMetadata(dq.UserID),
	}
}

// NewDailySetGeneratedEvent creates a daily set event
func NewDailySetGeneratedEvent(userID, date string, count int) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     DailySetGenerated,
		Payload:  DailySetGeneratedPayloadV1{Date: date, QuestCount: count},
		Metadata: userMetadata(userID),
	}
}

// NewDailySetRerolledEvent creates a reroll event
func NewDailySetRerolledEvent(userID, date string, count int) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     DailySetRerolled,
		Payload:  DailySetGeneratedPayloadV1{Date: date, QuestCount: count},
		Metadata: userMetadata(userID),
	}
}

// NewQuestsDeletedEvent creates a pool deletion event
func NewQuestsDeletedEvent(userID string, questIDs []int64, count int64) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     QuestsDeleted,
		Payload:  QuestsDeletedPayloadV1{QuestIDs: questIDs, Count: count},
		Metadata: userMetadata(userID),
	}
}

// NewStatsUpdatedEvent creates a stats event
func NewStatsUpdatedEvent(userID string, stats domain.UserStatsSnapshot) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     StatsUpdated,
		Payload:  StatsUpdatedPayloadV1{Stats: stats},
		Metadata: userMetadata(userID),
	}
}

// NewSessionsPurgedEvent creates a cleanup event
func NewSessionsPurgedEvent(purgedAt time.Time, count int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionsPurged,
		Payload: SessionsPurgedPayloadV1{PurgedAt: purgedAt, Count: count},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
