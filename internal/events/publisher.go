// Package events publishes custom domain list changes to Redis Streams.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jonesrussell/omnibar/internal/logger"
)

// asyncPublishTimeout is the context timeout for async publish operations.
const asyncPublishTimeout = 5 * time.Second

// Publisher publishes domain events to Redis Streams. A nil Publisher is
// valid and publishes nothing, so callers never need to branch on whether
// events are configured.
type Publisher struct {
	client *redis.Client
	log    logger.Logger
}

// NewPublisher creates a new event publisher. Returns nil if client is nil.
func NewPublisher(client *redis.Client, log logger.Logger) *Publisher {
	if client == nil {
		return nil
	}
	return &Publisher{
		client: client,
		log:    log,
	}
}

// Publish sends an event to the Redis stream.
func (p *Publisher) Publish(ctx context.Context, event DomainEvent) error {
	if p == nil || p.client == nil {
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: map[string]any{
			"event": string(payload),
		},
	})

	if publishErr := result.Err(); publishErr != nil {
		p.log.Error("Failed to publish event",
			logger.String("event_type", string(event.EventType)),
			logger.String("domain", event.Domain),
			logger.Error(publishErr),
		)
		return fmt.Errorf("publish to stream: %w", publishErr)
	}

	p.log.Info("Published domain event",
		logger.String("event_type", string(event.EventType)),
		logger.String("domain", event.Domain),
		logger.String("stream_id", result.Val()),
	)

	return nil
}

// PublishAsync publishes an event asynchronously. Errors are logged but
// not returned.
func (p *Publisher) PublishAsync(event DomainEvent) {
	if p == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncPublishTimeout)
		defer cancel()

		if err := p.Publish(ctx, event); err != nil {
			p.log.Error("Async publish failed",
				logger.String("event_type", string(event.EventType)),
				logger.Error(err),
			)
		}
	}()
}
