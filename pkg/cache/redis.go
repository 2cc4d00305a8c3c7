package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds staleness of cached rankings
const DefaultTTL = 5 * time.Minute

var Client *redis.Client

// InitRedis connects the cache client. The cache is optional: on failure
// the application continues with direct database reads.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("No Redis address configured, continuing without cache")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetJSON loads a cached value into dest, reporting whether it was present
func GetJSON(ctx context.Context, key string, dest any) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores a value under key with the default TTL, best effort
func SetJSON(ctx context.Context, key string, value any) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, key, data, DefaultTTL).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", key, err)
	}
}

func Close() {
	if Client != nil {
		if err := Client.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}
}
