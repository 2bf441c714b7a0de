package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	roomLockPrefix = "lock:room:"
	eventKeyPrefix = "webhook:event:"
)

// только владелец токена снимает блокировку
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// client is the subset of *redis.Client used by this package.
type client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

type RoomLocker struct {
	rdb        client
	ttl        time.Duration
	retryDelay time.Duration
	logger     logger.Logger
}

// NewRoomLocker holds each lock for at most ttl so a crashed holder cannot block a room forever.
func NewRoomLocker(rdb client, ttl, retryDelay time.Duration, logger logger.Logger) *RoomLocker {
	return &RoomLocker{
		rdb:        rdb,
		ttl:        ttl,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

func (l *RoomLocker) Lock(ctx context.Context, roomID string) (func(), error) {
	key := roomLockPrefix + roomID
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire room lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait room lock: %w", ctx.Err())
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *RoomLocker) release(key, token string) {
	// контекст запроса мог уже завершиться
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.rdb.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.logger.LogAttrs(ctx, logger.WarnLevel, "failed to release room lock",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

// EventDeduper remembers processed provider events for ttl.
type EventDeduper struct {
	rdb client
	ttl time.Duration
}

func NewEventDeduper(rdb client, ttl time.Duration) *EventDeduper {
	return &EventDeduper{rdb: rdb, ttl: ttl}
}

func (d *EventDeduper) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, eventKeyPrefix+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("check event %s: %w", eventID, err)
	}
	return n > 0, nil
}

func (d *EventDeduper) MarkProcessed(ctx context.Context, eventID string) error {
	if err := d.rdb.Set(ctx, eventKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), d.ttl).Err(); err != nil {
		return fmt.Errorf("mark event %s: %w", eventID, err)
	}
	return nil
}
