package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tirtha/internal/models/response_models"
)

// DestinationCache keeps the full destination aggregate warm between the
// map screen and the detail screen. A miss is never an error for callers;
// they fall through to Postgres and repopulate.
type DestinationCache interface {
	Get(ctx context.Context, destinationID string) (*response_models.DestinationFullDetails, bool)
	Set(ctx context.Context, details *response_models.DestinationFullDetails)
	Invalidate(ctx context.Context, destinationID string)
}

const (
	keyPrefix  = "destination:full:"
	defaultTTL = 10 * time.Minute
)

type redisDestinationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDestinationCache(client *redis.Client) DestinationCache {
	return &redisDestinationCache{client: client, ttl: defaultTTL}
}

func (c *redisDestinationCache) Get(ctx context.Context, destinationID string) (*response_models.DestinationFullDetails, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+destinationID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Error reading destination cache: %v", err)
		}
		return nil, false
	}

	var details response_models.DestinationFullDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		log.Printf("Error decoding cached destination %s: %v", destinationID, err)
		return nil, false
	}
	return &details, true
}

func (c *redisDestinationCache) Set(ctx context.Context, details *response_models.DestinationFullDetails) {
	raw, err := json.Marshal(details)
	if err != nil {
		log.Printf("Error encoding destination %s for cache: %v", details.ID, err)
		return
	}
	if err := c.client.Set(ctx, keyPrefix+details.ID, raw, c.ttl).Err(); err != nil {
		log.Printf("Error writing destination cache: %v", err)
	}
}

func (c *redisDestinationCache) Invalidate(ctx context.Context, destinationID string) {
	if err := c.client.Del(ctx, keyPrefix+destinationID).Err(); err != nil {
		log.Printf("Error invalidating destination cache: %v", err)
	}
}
