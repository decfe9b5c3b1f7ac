package domain

import "time"

// Quest is a user-authored task in the reusable pool.
type Quest struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

// DailyQuest is one day's assignment of a pool quest, joined with the quest text.
type DailyQuest struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"userId"`
	QuestID     int64      `json:"questId"`
	Date        string     `json:"date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Content     string     `json:"content"`
}

// Record projects the assignment to the shape the streak engine consumes.
func (d DailyQuest) Record() DailyQuestRecord {
	return DailyQuestRecord{
		UserID:      d.UserID,
		QuestID:     d.QuestID,
		Date:        d.Date,
		Completed:   d.Completed,
		CompletedAt: d.CompletedAt,
	}
}

// DailyQuestRecord is a single completion record as seen by the streak engine.
// Date is a plain calendar date (YYYY-MM-DD) relative to the user's day boundary.
type DailyQuestRecord struct {
	UserID      string     `json:"userId"`
	QuestID     int64      `json:"questId"`
	Date        string     `json:"date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// DefaultQuest is an entry of the built-in quest catalog offered during onboarding.
type DefaultQuest struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
