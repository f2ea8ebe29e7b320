package gamestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/pony-escape/game"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "maze"

// RedisStore keeps games in Redis as JSON with a TTL. Updates are serialized per
// maze with a redsync mutex so several emulator instances can share one Redis.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	pool := goredis.NewPool(client)
	return &RedisStore{
		client: client,
		locker: redsync.New(pool),
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, id)
}

func lockKey(id string) string {
	return fmt.Sprintf("%s:%s:lock", keyPrefix, id)
}

// Save inserts or replaces a game and refreshes its expiration.
func (r *RedisStore) Save(ctx context.Context, id string, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, gameKey(id), data, r.ttl).Err()
}

// Load retrieves a game by ID.
func (r *RedisStore) Load(ctx context.Context, id string) (*game.Game, error) {
	data, err := r.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, game.ErrNotFound
		}
		return nil, err
	}

	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Update performs a locked read-modify-write of a game.
func (r *RedisStore) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	mutex := r.locker.NewMutex(lockKey(id))
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	g, err := r.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	return r.Save(ctx, id, g)
}
