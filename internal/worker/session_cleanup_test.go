package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SideQuest_Go/internal/event"
)

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

func TestSessionCleanupJob_Process(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		purged      int64
		purgeErr    error
		wantErr     bool
		wantPublish bool
	}{
		{name: "publishes count", purged: 3, wantPublish: true},
		{name: "nothing to purge stays quiet", purged: 0},
		{name: "repository failure", purgeErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purger := &MockPurger{}
			purger.On("PurgeExpiredSessions", mock.Anything).Return(tt.purged, tt.purgeErr)
			pub := &MockPublisher{}
			if tt.wantPublish {
				pub.On("PublishWithRetry", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
					p, err := event.DecodePayload[event.SessionsPurgedPayloadV1](e.Payload)
					return err == nil && e.Type == event.SessionsPurged && p.Count == tt.purged && p.PurgedAt.Equal(fixed)
				})).Return()
			}

			job := NewSessionCleanupJob(purger, pub)
			job.now = func() time.Time { return fixed }

			err := job.Process(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			purger.AssertExpectations(t)
			pub.AssertExpectations(t)
			if !tt.wantPublish {
				pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSessionCleanupJob_NilPublisher(t *testing.T) {
	purger := &MockPurger{}
	purger.On("PurgeExpiredSessions", mock.Anything).Return(int64(5), nil)

	assert.NoError(t, NewSessionCleanupJob(purger, nil).Process(context.Background()))
}
