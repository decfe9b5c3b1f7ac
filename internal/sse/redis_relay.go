package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig configures the cross-instance relay
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// RedisRelay publishes stream events to a Redis channel and feeds every message
// received on it into the local hub, so a client connected to any instance sees
// events produced by all of them.
type RedisRelay struct {
	rdb     *goredis.Client
	channel string
	local   Dispatcher

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisRelay connects to Redis and verifies the connection
func NewRedisRelay(ctx context.Context, cfg RedisConfig, local Dispatcher) (*RedisRelay, error) {
	channel := cfg.Channel
	if channel == "" {
		channel = DefaultRedisChannel
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: RedisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, RedisDialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf(ErrMsgRedisPing, err)
	}

	return &RedisRelay{rdb: rdb, channel: channel, local: local}, nil
}

// Dispatch publishes evt to the shared channel
func (r *RedisRelay) Dispatch(ctx context.Context, evt Event) error {
	if r == nil || r.rdb == nil {
		return errors.New(ErrMsgRelayNotInitialized)
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeEvent, err)
	}
	return r.rdb.Publish(ctx, r.channel, raw).Err()
}

// Start subscribes to the channel and forwards messages until Stop
func (r *RedisRelay) Start(ctx context.Context) error {
	if r == nil || r.rdb == nil {
		return errors.New(ErrMsgRelayNotInitialized)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	sub := r.rdb.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		r.cancel()
		return fmt.Errorf(ErrMsgRedisSubscribe, err)
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var evt Event
				if err := json.Unmarshal([]byte(m.Payload), &evt); err != nil {
					slog.Warn(LogMsgRelayBadPayload, "error", err)
					continue
				}
				_ = r.local.Dispatch(ctx, evt)
			}
		}
	}()

	slog.Info(LogMsgRelayStarted, "channel", r.channel)
	return nil
}

// Stop ends the forwarding loop and closes the client
func (r *RedisRelay) Stop() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info(LogMsgRelayStopped)
	return r.rdb.Close()
}
