package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateRecentCities(ctx context.Context, id string, cities []string) error
}
