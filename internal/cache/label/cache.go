package label

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"orchestrator/internal/entities"
)

// Cache read-through кэш активной этикетки по номеру заявки.
// Источник истины - таблица shipment_labels, кэш можно потерять без последствий.
type Cache struct {
	client Client
	prefix string
	ttl    time.Duration
}

func New(client Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Cache) key(referenceNumber string) string {
	return fmt.Sprintf("%s:label:%s", c.prefix, referenceNumber)
}

func (c *Cache) Get(ctx context.Context, referenceNumber string) (*entities.ShipmentLabel, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	payload, err := c.client.Get(ctx, c.key(referenceNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("label cache get: %w", err)
	}

	var cached cachedLabel
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("label cache decode: %w", err)
	}

	return cached.toDomain(), true, nil
}

func (c *Cache) Set(ctx context.Context, label *entities.ShipmentLabel) error {
	if c.client == nil || label == nil {
		return nil
	}

	payload, err := json.Marshal(fromDomain(label))
	if err != nil {
		return fmt.Errorf("label cache encode: %w", err)
	}

	if err := c.client.Set(ctx, c.key(label.ReferenceNumber), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("label cache set: %w", err)
	}

	return nil
}

func (c *Cache) Invalidate(ctx context.Context, referenceNumber string) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, c.key(referenceNumber)).Err(); err != nil {
		return fmt.Errorf("label cache invalidate: %w", err)
	}

	return nil
}
