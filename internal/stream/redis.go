package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	redis_client "github.com/redis/go-redis/v9"

	"fraudwatch/internal/types"
	"fraudwatch/pkg/log"
	"fraudwatch/pkg/redis"
)

// RedisSource delivers wire events from a Redis Pub/Sub channel. It exists
// for local demos and tests where the backend's WebSocket endpoint is not
// running; the Source contract is identical to the WebSocket source.
type RedisSource struct {
	client  *redis.Client
	channel string
	logger  log.Logger

	connecting atomic.Bool
	active     atomic.Bool

	mu     sync.Mutex
	pubsub *redis_client.PubSub
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisSource creates a Redis Pub/Sub source for the given channel.
func NewRedisSource(client *redis.Client, channel string, logger log.Logger) *RedisSource {
	return &RedisSource{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Connect subscribes to the channel and returns once Redis acknowledges
// the subscription. A concurrent or repeated Connect returns
// ErrAlreadyConnected.
func (s *RedisSource) Connect(ctx context.Context, onEvent Handler) error {
	if !s.connecting.CompareAndSwap(false, true) {
		return ErrAlreadyConnected
	}

	runCtx, cancel := context.WithCancel(context.Background())
	pubsub := s.client.Subscribe(runCtx, s.channel)

	// Wait for the subscription acknowledgment before reporting success.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		cancel()
		s.connecting.Store(false)
		return fmt.Errorf("subscribe to %s: %w", s.channel, err)
	}

	done := make(chan struct{})

	s.mu.Lock()
	s.pubsub = pubsub
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	s.active.Store(true)
	s.logger.Infof(ctx, "Subscribed to Redis channel %s", s.channel)

	go s.listen(runCtx, pubsub, onEvent, done)

	return nil
}

// Disconnect closes the subscription. Safe to call repeatedly or before
// Connect.
func (s *RedisSource) Disconnect() {
	s.mu.Lock()
	cancel := s.cancel
	pubsub := s.pubsub
	done := s.done
	s.cancel = nil
	s.pubsub = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	if pubsub != nil {
		pubsub.Close()
	}
	<-done

	s.logger.Info(context.Background(), "Unsubscribed from Redis channel")
}

// Connected reports whether the subscription is currently live.
func (s *RedisSource) Connected() bool {
	return s.active.Load()
}

// listen decodes each payload as one wire event and hands it to the
// delivery callback. go-redis reconnects the underlying pub/sub on its
// own; a closed channel ends the subscription.
func (s *RedisSource) listen(ctx context.Context, pubsub *redis_client.PubSub, onEvent Handler, done chan struct{}) {
	defer close(done)
	defer s.active.Store(false)
	defer s.connecting.Store(false)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				s.logger.Warn(ctx, "Redis pub/sub channel closed")
				return
			}

			var event types.WireEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logger.Warnf(ctx, "Skipping malformed Redis payload: %v", err)
				continue
			}

			onEvent(&event)
		}
	}
}
