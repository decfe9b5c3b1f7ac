package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SideQuest_Go/internal/logger"
	"github.com/osse101/SideQuest_Go/internal/worker"
)

// Enqueuer accepts jobs for execution
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler enqueues jobs on fixed intervals
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule runs job every interval until Stop. With runNow the first run is
// enqueued immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	log := logger.FromContext(context.Background())
	if interval <= 0 {
		log.Warn(LogMsgScheduleDisabled, "job", job.Name())
		return
	}
	log.Info(LogMsgJobScheduled, "job", job.Name(), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if runNow {
			s.enqueue(job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	// A full queue skips this tick; the next tick tries again
	if !s.pool.Enqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgTickSkipped, "job", job.Name())
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
