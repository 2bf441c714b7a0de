package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// checkoutExpiryMargin keeps expires_at clear of the provider's minimum
// session lifetime after truncation and network latency.
const checkoutExpiryMargin = time.Minute

type CheckoutOptions struct {
	Currency   string
	SuccessURL string
	CancelURL  string
	SessionTTL time.Duration
	Timeout    time.Duration
}

type CheckoutService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	gateway     ports.PaymentGateway
	opts        CheckoutOptions
	logger      logger.Logger
}

func NewCheckoutService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	opts CheckoutOptions,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		opts:        opts,
		logger:      logger,
	}
}

// StartCheckout creates a hosted checkout session for the booking and
// returns the URL the guest is redirected to.
func (s *CheckoutService) StartCheckout(ctx context.Context, bookingID, userID string) (string, error) {
	if err := validateID("bookingId", bookingID); err != nil {
		return "", err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("get booking: %w", err)
	}
	// чужая бронь неотличима от отсутствующей
	if booking.UserID != userID {
		return "", domain.ErrBookingNotFound
	}
	if booking.IsPaid {
		return "", domain.ErrBookingAlreadyPaid
	}
	if booking.Status == domain.BookingStatusCancelled {
		return "", domain.ErrBookingCancelled
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return "", fmt.Errorf("get room: %w", err)
	}

	hotel, err := s.hotelRepo.GetByID(ctx, room.HotelID)
	if err != nil {
		return "", fmt.Errorf("get hotel: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	expiresAt := time.Now().Add(s.opts.SessionTTL + checkoutExpiryMargin).UTC().Truncate(time.Second)
	req := domain.CheckoutRequest{
		BookingID:      booking.ID,
		AmountMinor:    ToMinorUnits(booking.TotalPrice),
		Currency:       strings.ToLower(s.opts.Currency),
		ProductName:    fmt.Sprintf("%s - %s", hotel.Name, room.RoomType),
		Description:    fmt.Sprintf("%d night(s), %d guest(s)", booking.Stay().Nights(), booking.Guests),
		CustomerEmail:  user.Email,
		SuccessURL:     s.opts.SuccessURL,
		CancelURL:      s.opts.CancelURL,
		ExpiresAt:      expiresAt,
		IdempotencyKey: fmt.Sprintf("checkout-%s-%d", booking.ID, expiresAt.Unix()),
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	session, err := s.gateway.CreateCheckoutSession(callCtx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", domain.ErrGatewayTimeout, err.Error())
		}
		if errors.Is(err, domain.ErrGateway) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", domain.ErrGateway, err.Error())
	}

	if err = s.bookingRepo.AttachCheckout(ctx, booking.ID, session.ID, session.ExpiresAt); err != nil {
		return "", fmt.Errorf("attach checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("booking_id", booking.ID),
		logger.String("session_id", session.ID),
		logger.String("gateway", s.gateway.Name()),
		logger.Int64("amount", req.AmountMinor),
	)

	return session.URL, nil
}

// ToMinorUnits converts an amount in base currency to its smallest subunit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
