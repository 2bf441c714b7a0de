package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

type UserResponse struct {
	ID                   string   `json:"id"`
	Username             string   `json:"username"`
	Email                string   `json:"email"`
	Image                string   `json:"image,omitempty"`
	Role                 string   `json:"role"`
	RecentSearchedCities []string `json:"recentSearchedCities"`
	CreatedAt            string   `json:"createdAt"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type HotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	City    string `json:"city"`
	OwnerID string `json:"owner"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel"`
	RoomType      string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   bool     `json:"isAvailable"`
	CreatedAt     string   `json:"createdAt"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user"`
	RoomID        string  `json:"room"`
	HotelID       string  `json:"hotel"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Guests        int     `json:"guests"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	IsPaid        bool    `json:"isPaid"`
	CreatedAt     string  `json:"createdAt"`
}

type BookingViewResponse struct {
	BookingResponse
	RoomType  string `json:"roomType"`
	RoomImage string `json:"roomImage,omitempty"`
	HotelName string `json:"hotelName"`
	HotelCity string `json:"hotelCity"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type CreateBookingResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	Booking          BookingResponse `json:"booking"`
	NotificationSent bool            `json:"notificationSent"`
}

type DashboardResponse struct {
	TotalBookings int                   `json:"totalBookings"`
	TotalRevenue  float64               `json:"totalRevenue"`
	Bookings      []BookingViewResponse `json:"bookings"`
}

func ToUserResponse(u *domain.User) UserResponse {
	cities := u.RecentSearchedCities
	if cities == nil {
		cities = []string{}
	}
	return UserResponse{
		ID:                   u.ID,
		Username:             u.FullName,
		Email:                u.Email,
		Image:                u.Image,
		Role:                 string(u.Role),
		RecentSearchedCities: cities,
		CreatedAt:            u.CreatedAt.Format(time.RFC3339),
	}
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:      h.ID,
		Name:    h.Name,
		Address: h.Address,
		Contact: h.Contact,
		City:    h.City,
		OwnerID: h.OwnerID,
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomType:      string(r.RoomType),
		PricePerNight: r.PricePerNight,
		Amenities:     nonNil(r.Amenities),
		Images:        nonNil(r.Images),
		IsAvailable:   r.IsAvailable,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		HotelID:       b.HotelID,
		CheckInDate:   b.CheckIn.Format(time.RFC3339),
		CheckOutDate:  b.CheckOut.Format(time.RFC3339),
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		IsPaid:        b.IsPaid,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingViewResponse(v *domain.BookingView) BookingViewResponse {
	return BookingViewResponse{
		BookingResponse: ToBookingResponse(&v.Booking),
		RoomType:        string(v.RoomType),
		RoomImage:       v.RoomImage,
		HotelName:       v.HotelName,
		HotelCity:       v.HotelCity,
		UserName:        v.UserName,
		UserEmail:       v.UserEmail,
	}
}

func ToBookingViews(views []*domain.BookingView) []BookingViewResponse {
	resp := make([]BookingViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToBookingViewResponse(v))
	}
	return resp
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalBookings: d.TotalBookings,
		TotalRevenue:  d.TotalRevenue,
		Bookings:      ToBookingViews(d.Bookings),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
