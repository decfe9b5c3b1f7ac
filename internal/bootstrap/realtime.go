package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SideQuest_Go/internal/config"
	"github.com/osse101/SideQuest_Go/internal/sse"
)

// Realtime is the SSE delivery path. Dispatcher is where bus events are sent:
// the hub itself, or the Redis relay which fans out to every instance's hub.
type Realtime struct {
	Hub        *sse.Hub
	Relay      *sse.RedisRelay
	Dispatcher sse.Dispatcher
}

// SetupRealtime starts the SSE hub and, when Redis is configured, the relay.
func SetupRealtime(ctx context.Context, cfg *config.Config) (*Realtime, error) {
	hub := sse.NewHub()
	hub.Start()

	if !cfg.RedisEnabled() {
		slog.Info(LogMsgRealtimeLocal)
		return &Realtime{Hub: hub, Dispatcher: hub}, nil
	}

	relay, err := sse.NewRedisRelay(ctx, sse.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.RedisChannel,
	}, hub)
	if err != nil {
		hub.Stop()
		return nil, fmt.Errorf(ErrMsgRedisRelay, err)
	}
	if err := relay.Start(ctx); err != nil {
		_ = relay.Stop()
		hub.Stop()
		return nil, fmt.Errorf(ErrMsgRedisRelay, err)
	}

	slog.Info(LogMsgRealtimeRedis, "addr", cfg.RedisAddr, "channel", cfg.RedisChannel)
	return &Realtime{Hub: hub, Relay: relay, Dispatcher: relay}, nil
}
