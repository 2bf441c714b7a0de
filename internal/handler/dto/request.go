package dto

import (
	"fmt"
	"strings"
	"time"
)

type RegisterRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Image          string `json:"image"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecentCityRequest struct {
	RecentSearchedCity string `json:"recentSearchedCity"`
}

type RegisterHotelRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	City    string `json:"city"`
}

type CreateRoomRequest struct {
	RoomType      string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type ToggleAvailabilityRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type CheckAvailabilityRequest struct {
	Room         string `json:"room"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type BookRequest struct {
	Room          string `json:"room"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	Guests        int    `json:"guests"`
	PaymentMethod string `json:"paymentMethod"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC3339 or a plain date. Empty input yields the zero time
// so the service reports it as a missing field.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s format, expected YYYY-MM-DD or RFC3339", field)
}
