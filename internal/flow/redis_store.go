package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL expires inactive sessions so abandoned sign-ins clean themselves
// up.
const sessionTTL = 24 * time.Hour

// RedisStore keeps sessions in Redis, JSON-serialized, so the API can run
// more than one replica.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(host, port string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the user's session, falling back to a fresh initial session on
// a miss or an unreadable value.
func (r *RedisStore) Get(userKey string) *Session {
	ctx := context.Background()
	result := r.client.Get(ctx, sessionKey(userKey))
	if result.Err() != nil {
		return NewSession()
	}

	var s Session
	if err := json.Unmarshal([]byte(result.Val()), &s); err != nil {
		return NewSession()
	}
	return &s
}

// Save stores the session with the standard TTL.
func (r *RedisStore) Save(userKey string, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	ctx := context.Background()
	return r.client.Set(ctx, sessionKey(userKey), data, sessionTTL).Err()
}

// Clear removes the session for a user.
func (r *RedisStore) Clear(userKey string) {
	ctx := context.Background()
	r.client.Del(ctx, sessionKey(userKey))
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func sessionKey(userKey string) string {
	return fmt.Sprintf("session:%s", userKey)
}
