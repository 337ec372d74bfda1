//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"donation-service/models"

	"github.com/redis/go-redis/v9"
)

type Publisher interface {
	Publish(ctx context.Context, notification models.Notification) error
}

// RedisPublisher sends notifications as JSON on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, notification models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

// NopPublisher drops every notification. Used when no Redis URL is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.Notification) error { return nil }
