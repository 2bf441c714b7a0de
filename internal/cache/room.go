package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const roomKeyPrefix = "room:"

// Remote is the subset of *memcache.Client used here.
type Remote interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type Options struct {
	LocalSize int64
	LocalTTL  time.Duration
	RemoteTTL time.Duration
}

// RoomRepo caches rooms in process and, when configured, in memcached.
// Writes go to the wrapped repository first, then refresh both levels.
type RoomRepo struct {
	next   ports.RoomRepo
	local  *ccache.Cache[string, *domain.Room]
	remote Remote
	opts   Options
	logger logger.Logger
}

// NewRoomRepo wraps next. A nil remote disables the second level.
func NewRoomRepo(next ports.RoomRepo, remote Remote, opts Options, logger logger.Logger) *RoomRepo {
	return &RoomRepo{
		next:   next,
		local:  ccache.New(ccache.Configure[string, *domain.Room]().MaxSize(opts.LocalSize)),
		remote: remote,
		opts:   opts,
		logger: logger,
	}
}

// NewMemcached returns nil when addr is empty.
func NewMemcached(addr string) Remote {
	if addr == "" {
		return nil
	}
	return memcache.New(addr)
}

func (r *RoomRepo) Create(ctx context.Context, room *domain.Room) error {
	return r.next.Create(ctx, room)
}

func (r *RoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	key := roomKeyPrefix + id

	if item := r.local.Get(key); item != nil && !item.Expired() {
		return cloneRoom(item.Value()), nil
	}

	if room, ok := r.getRemote(ctx, key); ok {
		r.local.Set(key, room, r.opts.LocalTTL)
		return cloneRoom(room), nil
	}

	room, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, room)
	return cloneRoom(room), nil
}

// ToggleAvailability writes through: both levels get the row the store returned.
// On failure the cached copy is dropped since the outcome is unknown.
func (r *RoomRepo) ToggleAvailability(ctx context.Context, id string) (*domain.Room, error) {
	key := roomKeyPrefix + id

	room, err := r.next.ToggleAvailability(ctx, id)
	if err != nil {
		r.invalidate(ctx, key)
		return nil, err
	}

	r.store(ctx, key, room)
	return cloneRoom(room), nil
}

func (r *RoomRepo) getRemote(ctx context.Context, key string) (*domain.Room, bool) {
	if r.remote == nil {
		return nil, false
	}

	item, err := r.remote.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			r.logger.LogAttrs(ctx, logger.WarnLevel, "memcached get failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var room domain.Room
	if err = json.Unmarshal(item.Value, &room); err != nil {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "memcached value is corrupted",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return &room, true
}

func (r *RoomRepo) store(ctx context.Context, key string, room *domain.Room) {
	cached := cloneRoom(room)
	r.local.Set(key, cached, r.opts.LocalTTL)

	if r.remote == nil {
		return
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return
	}

	if err = r.remote.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(r.opts.RemoteTTL.Seconds()),
	}); err != nil {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "memcached set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (r *RoomRepo) invalidate(ctx context.Context, key string) {
	r.local.Delete(key)

	if r.remote == nil {
		return
	}
	if err := r.remote.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "memcached delete failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

// Stop releases the local cache worker.
func (r *RoomRepo) Stop() {
	r.local.Stop()
}

func cloneRoom(room *domain.Room) *domain.Room {
	c := *room
	c.Amenities = append([]string(nil), room.Amenities...)
	c.Images = append([]string(nil), room.Images...)
	return &c
}
