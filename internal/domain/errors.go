package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrRoomNotAvailable       = errors.New("room is not available for the selected dates")
	ErrBookingAlreadyPaid     = errors.New("booking is already paid")
	ErrBookingCancelled       = errors.New("booking is cancelled")
	ErrHotelAlreadyRegistered = errors.New("hotel is already registered for this owner")
	ErrEmailTaken             = errors.New("email is already registered")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrGateway          = errors.New("payment gateway error")
	ErrGatewayTimeout   = errors.New("payment gateway timeout")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

var (
	ErrValidation = errors.New("validation error")
)
