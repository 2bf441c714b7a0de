package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CatalogService covers the owner side of hotels and rooms.
type CatalogService struct {
	hotelRepo ports.HotelRepo
	roomRepo  ports.RoomRepo
	userRepo  ports.UserRepo
	validate  *validator.Validate
	logger    logger.Logger
}

func NewCatalogService(
	hotelRepo ports.HotelRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
		userRepo:  userRepo,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (s *CatalogService) RegisterHotel(ctx context.Context, ownerID string, input domain.RegisterHotelInput) (*domain.Hotel, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	hotel := &domain.Hotel{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		Contact:   strings.TrimSpace(input.Contact),
		City:      strings.TrimSpace(input.City),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	if err := s.userRepo.UpdateRole(ctx, ownerID, domain.RoleHotelOwner); err != nil {
		return nil, fmt.Errorf("promote owner: %w", err)
	}

	s.logger.Info("hotel registered",
		logger.String("hotel_id", hotel.ID),
		logger.String("owner_id", ownerID),
	)

	return hotel, nil
}

func (s *CatalogService) CreateRoom(ctx context.Context, ownerID string, input domain.CreateRoomInput) (*domain.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if !input.RoomType.Valid() {
		return nil, fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, input.RoomType)
	}

	hotel, err := s.hotelRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner hotel: %w", err)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:            uuid.New().String(),
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Amenities:     input.Amenities,
		Images:        input.Images,
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if room.Images == nil {
		room.Images = []string{}
	}

	if err = s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

// ToggleRoomAvailability flips the owner-controlled flag. It does not
// touch existing bookings.
func (s *CatalogService) ToggleRoomAvailability(ctx context.Context, ownerID, roomID string) (*domain.Room, error) {
	if err := validateID("roomId", roomID); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner hotel: %w", err)
	}

	// hotel_id комнаты не меняется, кэш для проверки владельца годится
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.HotelID != hotel.ID {
		return nil, domain.ErrForbidden
	}

	room, err = s.roomRepo.ToggleAvailability(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}

	s.logger.Info("room availability toggled",
		logger.String("room_id", room.ID),
		logger.String("hotel_id", hotel.ID),
		logger.Any("is_available", room.IsAvailable),
	)

	return room, nil
}
