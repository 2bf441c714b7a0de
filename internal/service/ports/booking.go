package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListActiveByRoom returns non-cancelled bookings of the room intersecting the stay.
	ListActiveByRoom(ctx context.Context, roomID string, stay domain.Stay) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*domain.BookingView, error)
	AttachCheckout(ctx context.Context, id, sessionID string, expiresAt time.Time) error
	// MarkPaid reports whether the booking changed state.
	MarkPaid(ctx context.Context, id, paymentMethod string) (bool, error)
	// CancelExpired cancels unpaid pending bookings of the payment method whose checkout expired more than grace ago.
	CancelExpired(ctx context.Context, paymentMethod string, grace time.Duration) ([]*domain.Booking, error)
}
