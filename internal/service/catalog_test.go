package service

import (
	"context"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*CatalogService, *mocks.MockHotelRepo, *mocks.MockRoomRepo, *mocks.MockUserRepo) {
	t.Helper()
	hotels := mocks.NewMockHotelRepo(t)
	rooms := mocks.NewMockRoomRepo(t)
	users := mocks.NewMockUserRepo(t)
	return NewCatalogService(hotels, rooms, users, newTestLogger(t)), hotels, rooms, users
}

func TestCatalogService_RegisterHotel(t *testing.T) {
	svc, hotels, _, users := newCatalog(t)

	hotels.EXPECT().Create(mock.Anything, mock.MatchedBy(func(h *domain.Hotel) bool {
		return h.OwnerID == "o1" && h.Name == "Seaside"
	})).Return(nil)
	users.EXPECT().UpdateRole(mock.Anything, "o1", domain.RoleHotelOwner).Return(nil)

	h, err := svc.RegisterHotel(context.Background(), "o1", domain.RegisterHotelInput{
		Name: " Seaside ", Address: "1 Beach Rd", Contact: "+33 1 23", City: "Nice",
	})

	require.NoError(t, err)
	assert.Equal(t, "Seaside", h.Name)
	assert.NotEmpty(t, h.ID)
}

func TestCatalogService_RegisterHotel_AlreadyRegistered(t *testing.T) {
	svc, hotels, _, _ := newCatalog(t)

	hotels.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrHotelAlreadyRegistered)

	_, err := svc.RegisterHotel(context.Background(), "o1", domain.RegisterHotelInput{
		Name: "Seaside", Address: "1 Beach Rd", Contact: "+33 1 23", City: "Nice",
	})

	assert.ErrorIs(t, err, domain.ErrHotelAlreadyRegistered)
}

func TestCatalogService_RegisterHotel_Validation(t *testing.T) {
	svc, _, _, _ := newCatalog(t)

	_, err := svc.RegisterHotel(context.Background(), "o1", domain.RegisterHotelInput{Name: "Seaside"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateRoom(t *testing.T) {
	svc, hotels, rooms, _ := newCatalog(t)

	hotels.EXPECT().GetByOwner(mock.Anything, "o1").Return(testHotel, nil)
	rooms.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	room, err := svc.CreateRoom(context.Background(), "o1", domain.CreateRoomInput{
		RoomType:      domain.RoomTypeLuxury,
		PricePerNight: 250,
		Amenities:     []string{"Free WiFi", "Pool Access"},
	})

	require.NoError(t, err)
	assert.Equal(t, "h1", room.HotelID)
	assert.True(t, room.IsAvailable)
	assert.Empty(t, room.Images)
}

func TestCatalogService_CreateRoom_InvalidType(t *testing.T) {
	svc, _, _, _ := newCatalog(t)

	_, err := svc.CreateRoom(context.Background(), "o1", domain.CreateRoomInput{
		RoomType:      "Penthouse",
		PricePerNight: 250,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateRoom_NonPositivePrice(t *testing.T) {
	svc, _, _, _ := newCatalog(t)

	_, err := svc.CreateRoom(context.Background(), "o1", domain.CreateRoomInput{
		RoomType:      domain.RoomTypeSingle,
		PricePerNight: 0,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ToggleRoomAvailability(t *testing.T) {
	svc, hotels, rooms, _ := newCatalog(t)

	cached := &domain.Room{ID: testRoomID, HotelID: "h1", IsAvailable: true}
	hotels.EXPECT().GetByOwner(mock.Anything, "o1").Return(testHotel, nil)
	rooms.EXPECT().GetByID(mock.Anything, testRoomID).Return(cached, nil)
	// флаг переключает хранилище, а не копия из кэша
	rooms.EXPECT().ToggleAvailability(mock.Anything, testRoomID).
		Return(&domain.Room{ID: testRoomID, HotelID: "h1", IsAvailable: false}, nil)

	res, err := svc.ToggleRoomAvailability(context.Background(), "o1", testRoomID)

	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	assert.True(t, cached.IsAvailable)
}

func TestCatalogService_ToggleRoomAvailability_StaleCacheStillFlips(t *testing.T) {
	svc, hotels, rooms, _ := newCatalog(t)

	// кэш отстал: в базе комната уже закрыта
	stale := &domain.Room{ID: testRoomID, HotelID: "h1", IsAvailable: true}
	hotels.EXPECT().GetByOwner(mock.Anything, "o1").Return(testHotel, nil)
	rooms.EXPECT().GetByID(mock.Anything, testRoomID).Return(stale, nil)
	rooms.EXPECT().ToggleAvailability(mock.Anything, testRoomID).
		Return(&domain.Room{ID: testRoomID, HotelID: "h1", IsAvailable: true}, nil)

	res, err := svc.ToggleRoomAvailability(context.Background(), "o1", testRoomID)

	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
}

func TestCatalogService_ToggleRoomAvailability_MalformedID(t *testing.T) {
	svc, _, _, _ := newCatalog(t)

	_, err := svc.ToggleRoomAvailability(context.Background(), "o1", "room-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ToggleRoomAvailability_OtherHotel(t *testing.T) {
	svc, hotels, rooms, _ := newCatalog(t)

	hotels.EXPECT().GetByOwner(mock.Anything, "o1").Return(testHotel, nil)
	rooms.EXPECT().GetByID(mock.Anything, otherRoomID).Return(&domain.Room{ID: otherRoomID, HotelID: "h9"}, nil)

	_, err := svc.ToggleRoomAvailability(context.Background(), "o1", otherRoomID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
