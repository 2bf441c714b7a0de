package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type HotelRepo interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Hotel, error)
}

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	// ToggleAvailability flips the owner flag atomically and returns the updated room.
	ToggleAvailability(ctx context.Context, id string) (*domain.Room, error)
}
