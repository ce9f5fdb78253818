package session

import (
	"context"
	"encoding/json"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/accounted4/go-accounted4/internal/errors"
)

const redisKeyPrefix = "accounted4:"

// RedisRepo persists session state in Redis as JSON, so sessions survive
// process restarts and can be shared between instances. Each write renews
// the TTL.
type RedisRepo struct {
	c   *rdb.Client
	ttl time.Duration
}

// NewRedisRepo connects to the given Redis address and database. A ttl of
// zero stores sessions without expiry.
func NewRedisRepo(addr string, db int, ttl time.Duration) *RedisRepo {
	return &RedisRepo{
		c:   rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		ttl: ttl,
	}
}

var _ Repo = (*RedisRepo)(nil)

func (r *RedisRepo) Get(ctx context.Context, sessionID string) (State, error) {
	b, err := r.c.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err == rdb.Nil {
		return State{}, nil
	}
	if err != nil {
		return State{}, errors.Wrapf(errors.ErrSessionStore, "redis get: %v", err)
	}

	var state State
	if err := json.Unmarshal(b, &state); err != nil {
		return State{}, errors.Wrapf(errors.ErrSessionStore, "redis decode: %v", err)
	}
	return state, nil
}

func (r *RedisRepo) Upsert(ctx context.Context, sessionID string, state State) error {
	b, err := json.Marshal(state)
	if err != nil {
		return errors.Wrapf(errors.ErrSessionStore, "redis encode: %v", err)
	}
	if err := r.c.Set(ctx, redisKeyPrefix+sessionID, b, r.ttl).Err(); err != nil {
		return errors.Wrapf(errors.ErrSessionStore, "redis set: %v", err)
	}
	return nil
}

func (r *RedisRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.c.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrapf(errors.ErrSessionStore, "redis del: %v", err)
	}
	return nil
}
