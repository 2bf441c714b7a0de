package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// ConfirmationSender delivers booking confirmations to guests.
type ConfirmationSender interface {
	SendBookingConfirmation(
		ctx context.Context,
		booking *domain.Booking,
		recipient domain.Recipient,
		room domain.RoomSnapshot,
	) error
}

// OwnerNotifier alerts hotel owners. Delivery is best-effort.
type OwnerNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking)
	NotifyBookingPaid(ctx context.Context, owner *domain.User, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, owner *domain.User, booking *domain.Booking)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
