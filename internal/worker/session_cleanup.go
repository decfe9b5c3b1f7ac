package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// SessionPurger deletes lapsed sessions
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// Publisher delivers events, retrying in the background on failure
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// SessionCleanupJob removes expired sessions and reports how many went
type SessionCleanupJob struct {
	purger    SessionPurger
	publisher Publisher
	now       func() time.Time
}

// NewSessionCleanupJob creates the cleanup job. publisher may be nil.
func NewSessionCleanupJob(purger SessionPurger, publisher Publisher) *SessionCleanupJob {
	return &SessionCleanupJob{
		purger:    purger,
		publisher: publisher,
		now:       time.Now,
	}
}

func (j *SessionCleanupJob) Name() string { return "session_cleanup" }

func (j *SessionCleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSessionCleanupStarting)

	n, err := j.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		log.Error(LogMsgSessionCleanupFailed, "error", err)
		return fmt.Errorf(ErrMsgPurgeFailed, err)
	}

	if n > 0 && j.publisher != nil {
		j.publisher.PublishWithRetry(ctx, event.NewSessionsPurgedEvent(j.now().UTC(), n))
	}
	return nil
}
