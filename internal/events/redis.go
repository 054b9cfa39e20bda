package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	now     func() time.Time
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: Channel, now: time.Now}
}

// Publish stamps OccurredAt when unset and sends the JSON payload.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}
	return nil
}

// Subscriber listens on the lifecycle channel and fans each event out to
// the registered handlers in order.
type Subscriber struct {
	rdb      *redis.Client
	channel  string
	handlers []Handler
	logger   *zap.Logger
}

func NewSubscriber(rdb *redis.Client, logger *zap.Logger, handlers ...Handler) *Subscriber {
	return &Subscriber{rdb: rdb, channel: Channel, handlers: handlers, logger: logger}
}

// Register adds a handler. It must be called before Run.
func (s *Subscriber) Register(h Handler) {
	s.handlers = append(s.handlers, h)
}

// Run blocks until ctx is cancelled or the subscription channel closes.
// ready, when non-nil, is closed once the subscription is confirmed.
func (s *Subscriber) Run(ctx context.Context, ready chan<- struct{}) error {
	sub := s.rdb.Subscribe(ctx, s.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return errors.Wrap(err, "subscribe to lifecycle channel")
	}
	if ready != nil {
		close(ready)
	}
	s.logger.Info("subscribed to lifecycle events", zap.String("channel", s.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.dispatch(ctx, msg.Payload)
		}
	}
}

func (s *Subscriber) dispatch(ctx context.Context, payload string) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Warn("dropping malformed event", zap.Error(err))
		return
	}
	for _, h := range s.handlers {
		if err := h.HandleEvent(ctx, event); err != nil {
			s.logger.Error("event handler failed",
				zap.String("type", string(event.Type)),
				zap.String("subject", event.SubjectID()),
				zap.Error(err))
		}
	}
}
