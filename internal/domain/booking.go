package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

const (
	PaymentMethodPayAtHotel = "Pay At Hotel"
	PaymentMethodStripe     = "Stripe"
)

type Booking struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	RoomID            string        `json:"room_id"`
	HotelID           string        `json:"hotel_id"`
	CheckIn           time.Time     `json:"check_in"`
	CheckOut          time.Time     `json:"check_out"`
	Guests            int           `json:"guests"`
	TotalPrice        float64       `json:"total_price"`
	Status            BookingStatus `json:"status"`
	PaymentMethod     string        `json:"payment_method"`
	IsPaid            bool          `json:"is_paid"`
	CheckoutSessionID *string       `json:"checkout_session_id,omitempty"`
	CheckoutExpiresAt *time.Time    `json:"checkout_expires_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (b *Booking) Stay() Stay {
	return Stay{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

type CreateBookingInput struct {
	UserID        string
	RoomID        string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	PaymentMethod string
}

type BookingResult struct {
	Booking          *Booking
	NotificationSent bool
}

// BookingView is a booking joined with the room and hotel it refers to.
type BookingView struct {
	Booking
	RoomType  RoomType `json:"room_type"`
	RoomImage string   `json:"room_image"`
	HotelName string   `json:"hotel_name"`
	HotelCity string   `json:"hotel_city"`
	UserName  string   `json:"user_name"`
	UserEmail string   `json:"user_email"`
}

type Dashboard struct {
	TotalBookings int            `json:"total_bookings"`
	TotalRevenue  float64        `json:"total_revenue"`
	Bookings      []*BookingView `json:"bookings"`
}

// Recipient is who receives a booking confirmation.
type Recipient struct {
	Email string
	Name  string
}

// RoomSnapshot carries what a confirmation needs to describe the room.
type RoomSnapshot struct {
	HotelName    string
	HotelAddress string
	RoomType     RoomType
	Nights       int
}
