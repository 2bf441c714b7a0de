package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LocalRoomLocker serialises bookings per room inside one process.
// Used when redis is not configured.
type LocalRoomLocker struct {
	mu    sync.Mutex
	rooms map[string]chan struct{}
}

func NewLocalRoomLocker() *LocalRoomLocker {
	return &LocalRoomLocker{rooms: make(map[string]chan struct{})}
}

func (l *LocalRoomLocker) Lock(ctx context.Context, roomID string) (func(), error) {
	l.mu.Lock()
	ch, ok := l.rooms[roomID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.rooms[roomID] = ch
	}
	l.mu.Unlock()

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("wait room lock: %w", ctx.Err())
	}
}

// LocalDeduper keeps processed event ids in memory.
type LocalDeduper struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
}

func NewLocalDeduper(ttl time.Duration) *LocalDeduper {
	return &LocalDeduper{seen: make(map[string]time.Time), ttl: ttl}
}

func (d *LocalDeduper) IsProcessed(_ context.Context, eventID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	at, ok := d.seen[eventID]
	if !ok {
		return false, nil
	}
	if time.Since(at) > d.ttl {
		delete(d.seen, eventID)
		return false, nil
	}
	return true, nil
}

func (d *LocalDeduper) MarkProcessed(_ context.Context, eventID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[eventID] = time.Now()
	return nil
}
