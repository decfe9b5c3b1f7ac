package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// RedisDialTimeout bounds the initial relay connection
	RedisDialTimeout = 5 * time.Second

	// DefaultRedisChannel is used when no channel is configured
	DefaultRedisChannel = "sidequest:events"
)

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "streaming not supported"
	ErrMsgRelayNotInitialized  = "redis relay not initialized"
	ErrMsgRedisPing            = "redis ping: %w"
	ErrMsgRedisSubscribe       = "redis subscribe: %w"
	ErrMsgEncodeEvent          = "encode stream event: %w"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgEventUnrouted      = "SSE event has no user, dropped"
	LogMsgClientSlow         = "SSE client buffer full, event skipped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgRelayBadPayload    = "Bad redis relay payload"
	LogMsgRelayStarted       = "Redis event relay started"
	LogMsgRelayStopped       = "Redis event relay stopped"
)
