package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeRemote struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{items: make(map[string][]byte)}
}

func (f *fakeRemote) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return &memcache.Item{Key: key, Value: v}, nil
}

func (f *fakeRemote) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeRemote) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testOptions() Options {
	return Options{LocalSize: 100, LocalTTL: time.Minute, RemoteTTL: time.Minute}
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            "r1",
		HotelID:       "h1",
		RoomType:      domain.RoomTypeDouble,
		PricePerNight: 120,
		Amenities:     []string{"Free WiFi"},
		IsAvailable:   true,
	}
}

func TestRoomRepo_GetByID_CachesLocally(t *testing.T) {
	next := mocks.NewMockRoomRepo(t)
	next.EXPECT().GetByID(context.Background(), "r1").Return(testRoom(), nil).Once()

	repo := NewRoomRepo(next, nil, testOptions(), newTestLogger(t))
	defer repo.Stop()

	first, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	second, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoomRepo_GetByID_ReturnsCopies(t *testing.T) {
	next := mocks.NewMockRoomRepo(t)
	next.EXPECT().GetByID(context.Background(), "r1").Return(testRoom(), nil).Once()

	repo := NewRoomRepo(next, nil, testOptions(), newTestLogger(t))
	defer repo.Stop()

	room, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	room.IsAvailable = false
	room.Amenities[0] = "changed"

	again, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, again.IsAvailable)
	assert.Equal(t, []string{"Free WiFi"}, again.Amenities)
}

func TestRoomRepo_GetByID_NotFoundNotCached(t *testing.T) {
	next := mocks.NewMockRoomRepo(t)
	next.EXPECT().GetByID(context.Background(), "r1").Return(nil, domain.ErrRoomNotFound).Twice()

	repo := NewRoomRepo(next, nil, testOptions(), newTestLogger(t))
	defer repo.Stop()

	for i := 0; i < 2; i++ {
		_, err := repo.GetByID(context.Background(), "r1")
		assert.True(t, errors.Is(err, domain.ErrRoomNotFound))
	}
}

func TestRoomRepo_GetByID_FromRemote(t *testing.T) {
	remote := newFakeRemote()
	data, err := json.Marshal(testRoom())
	require.NoError(t, err)
	remote.items["room:r1"] = data

	// репозиторий не должен вызываться
	next := mocks.NewMockRoomRepo(t)
	repo := NewRoomRepo(next, remote, testOptions(), newTestLogger(t))
	defer repo.Stop()

	room, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "h1", room.HotelID)
	assert.Equal(t, 120.0, room.PricePerNight)
}

func TestRoomRepo_GetByID_WritesRemote(t *testing.T) {
	remote := newFakeRemote()
	next := mocks.NewMockRoomRepo(t)
	next.EXPECT().GetByID(context.Background(), "r1").Return(testRoom(), nil).Once()

	repo := NewRoomRepo(next, remote, testOptions(), newTestLogger(t))
	defer repo.Stop()

	_, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)

	item, err := remote.Get("room:r1")
	require.NoError(t, err)
	var cached domain.Room
	require.NoError(t, json.Unmarshal(item.Value, &cached))
	assert.Equal(t, "r1", cached.ID)
}

func TestRoomRepo_ToggleAvailability_WritesThrough(t *testing.T) {
	remote := newFakeRemote()
	next := mocks.NewMockRoomRepo(t)

	updated := testRoom()
	updated.IsAvailable = false

	next.EXPECT().GetByID(context.Background(), "r1").Return(testRoom(), nil).Once()
	next.EXPECT().ToggleAvailability(context.Background(), "r1").Return(updated, nil).Once()

	repo := NewRoomRepo(next, remote, testOptions(), newTestLogger(t))
	defer repo.Stop()

	room, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)

	room, err = repo.ToggleAvailability(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	item, err := remote.Get("room:r1")
	require.NoError(t, err)
	var cached domain.Room
	require.NoError(t, json.Unmarshal(item.Value, &cached))
	assert.False(t, cached.IsAvailable)

	// следующее чтение идёт из кэша и видит новое значение
	room, err = repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)
}

func TestRoomRepo_ToggleAvailability_ErrorDropsCache(t *testing.T) {
	remote := newFakeRemote()
	next := mocks.NewMockRoomRepo(t)

	fresh := testRoom()
	fresh.IsAvailable = false

	next.EXPECT().GetByID(context.Background(), "r1").Return(testRoom(), nil).Once()
	next.EXPECT().ToggleAvailability(context.Background(), "r1").Return(nil, errors.New("db down")).Once()
	next.EXPECT().GetByID(context.Background(), "r1").Return(fresh, nil).Once()

	repo := NewRoomRepo(next, remote, testOptions(), newTestLogger(t))
	defer repo.Stop()

	_, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)

	_, err = repo.ToggleAvailability(context.Background(), "r1")
	require.Error(t, err)

	_, err = remote.Get("room:r1")
	assert.ErrorIs(t, err, memcache.ErrCacheMiss)

	room, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)
}
