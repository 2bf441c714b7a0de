package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type PaymentGateway interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
	// ParseEvent verifies the signature and decodes the payload.
	ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
	// BookingIDByPaymentIntent returns "" when no checkout session references the intent.
	BookingIDByPaymentIntent(ctx context.Context, paymentIntentID string) (string, error)
}

type EventDeduper interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}

type PaymentJournal interface {
	Record(ctx context.Context, rec domain.PaymentRecord) error
}
