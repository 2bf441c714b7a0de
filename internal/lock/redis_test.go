package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]interface{}
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]interface{})}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[keys[0]] == args[0] {
		delete(f.data, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return redis.NewStatusResult("OK", nil)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestRoomLocker_LockUnlock(t *testing.T) {
	rdb := newFakeRedis()
	locker := NewRoomLocker(rdb, time.Minute, time.Millisecond, newTestLogger(t))

	unlock, err := locker.Lock(context.Background(), "r1")
	require.NoError(t, err)
	assert.Contains(t, rdb.data, "lock:room:r1")

	unlock()
	assert.NotContains(t, rdb.data, "lock:room:r1")
}

func TestRoomLocker_WaitsForHolder(t *testing.T) {
	rdb := newFakeRedis()
	locker := NewRoomLocker(rdb, time.Minute, time.Millisecond, newTestLogger(t))

	unlock, err := locker.Lock(context.Background(), "r1")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := locker.Lock(context.Background(), "r1")
		if err == nil {
			second()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first is held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock was not acquired after release")
	}
}

func TestRoomLocker_ContextDone(t *testing.T) {
	rdb := newFakeRedis()
	locker := NewRoomLocker(rdb, time.Minute, time.Millisecond, newTestLogger(t))

	_, err := locker.Lock(context.Background(), "r1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, "r1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRoomLocker_ForeignTokenNotReleased(t *testing.T) {
	rdb := newFakeRedis()
	locker := NewRoomLocker(rdb, time.Minute, time.Millisecond, newTestLogger(t))

	unlock, err := locker.Lock(context.Background(), "r1")
	require.NoError(t, err)

	// блокировка истекла и перехвачена другим процессом
	rdb.data["lock:room:r1"] = "other"
	unlock()

	assert.Equal(t, "other", rdb.data["lock:room:r1"])
}

func TestRoomLocker_RedisError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	locker := NewRoomLocker(rdb, time.Minute, time.Millisecond, newTestLogger(t))

	_, err := locker.Lock(context.Background(), "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEventDeduper(t *testing.T) {
	rdb := newFakeRedis()
	d := NewEventDeduper(rdb, time.Hour)

	seen, err := d.IsProcessed(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, d.MarkProcessed(context.Background(), "evt_1"))

	seen, err = d.IsProcessed(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Contains(t, rdb.data, "webhook:event:evt_1")
}

func TestEventDeduper_Error(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("timeout")
	d := NewEventDeduper(rdb, time.Hour)

	_, err := d.IsProcessed(context.Background(), "evt_1")
	assert.Error(t, err)
}
