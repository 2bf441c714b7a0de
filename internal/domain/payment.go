package domain

import "time"

type PaymentEventKind string

const (
	PaymentEventCheckoutCompleted PaymentEventKind = "checkout.session.completed"
	PaymentEventPaymentSucceeded  PaymentEventKind = "payment_intent.succeeded"
)

// PaymentEvent is a verified provider event reduced to what reconciliation needs.
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	BookingID       string
	PaymentIntentID string
	CreatedAt       time.Time
}

type CheckoutRequest struct {
	BookingID      string
	AmountMinor    int64
	Currency       string
	ProductName    string
	Description    string
	CustomerEmail  string
	SuccessURL     string
	CancelURL      string
	ExpiresAt      time.Time
	IdempotencyKey string
}

type CheckoutSession struct {
	ID        string
	URL       string
	ExpiresAt time.Time
}

type PaymentOutcome string

const (
	PaymentOutcomeApplied   PaymentOutcome = "applied"
	PaymentOutcomeDuplicate PaymentOutcome = "duplicate"
	PaymentOutcomeIgnored   PaymentOutcome = "ignored"
	PaymentOutcomeRejected  PaymentOutcome = "rejected"
	PaymentOutcomeFailed    PaymentOutcome = "failed"
)

// PaymentRecord is a journal entry for a processed provider event.
type PaymentRecord struct {
	EventID    string         `bson:"event_id"`
	Kind       string         `bson:"kind"`
	BookingID  string         `bson:"booking_id,omitempty"`
	Outcome    PaymentOutcome `bson:"outcome"`
	Error      string         `bson:"error,omitempty"`
	ReceivedAt time.Time      `bson:"received_at"`
}

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking.created"
	BookingEventConfirmed BookingEventType = "booking.confirmed"
	BookingEventExpired   BookingEventType = "booking.expired"
)

// BookingEvent is published to the message broker after state changes.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  string           `json:"booking_id"`
	RoomID     string           `json:"room_id"`
	HotelID    string           `json:"hotel_id"`
	UserID     string           `json:"user_id"`
	TotalPrice float64          `json:"total_price"`
	Status     BookingStatus    `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		HotelID:    b.HotelID,
		UserID:     b.UserID,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		OccurredAt: time.Now().UTC(),
	}
}
