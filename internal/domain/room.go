package domain

import "time"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single Bed"
	RoomTypeDouble RoomType = "Double Bed"
	RoomTypeLuxury RoomType = "Luxury Room"
	RoomTypeFamily RoomType = "Family Suite"
)

var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeLuxury, RoomTypeFamily}

func (t RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Room.IsAvailable is a manual owner toggle and is independent of
// date-range occupancy derived from bookings.
type Room struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotel_id"`
	RoomType      RoomType  `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateRoomInput struct {
	RoomType      RoomType `validate:"required"`
	PricePerNight float64  `validate:"gt=0"`
	Amenities     []string `validate:"dive,required"`
	Images        []string `validate:"max=4,dive,url"`
}
