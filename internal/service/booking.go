package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type availabilityChecker interface {
	IsAvailable(ctx context.Context, roomID string, stay domain.Stay) (bool, error)
}

type BookingOptions struct {
	// NotifyWait is how long Create waits for the confirmation email
	// before reporting it as not sent. Delivery continues in background.
	NotifyWait    time.Duration
	NotifyTimeout time.Duration
	CheckoutGrace time.Duration
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	checker     availabilityChecker
	locker      ports.RoomLocker
	sender      ports.ConfirmationSender
	owners      ports.OwnerNotifier
	publisher   ports.EventPublisher
	opts        BookingOptions
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	checker availabilityChecker,
	locker ports.RoomLocker,
	sender ports.ConfirmationSender,
	owners ports.OwnerNotifier,
	publisher ports.EventPublisher,
	opts BookingOptions,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		checker:     checker,
		locker:      locker,
		sender:      sender,
		owners:      owners,
		publisher:   publisher,
		opts:        opts,
		logger:      logger,
	}
}

func (s *BookingService) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if roomID == "" || checkIn.IsZero() || checkOut.IsZero() {
		return false, fmt.Errorf("%w: room, check-in and check-out dates are required", domain.ErrValidation)
	}
	if err := validateID("roomId", roomID); err != nil {
		return false, err
	}

	stay := domain.Stay{CheckIn: checkIn, CheckOut: checkOut}
	if !stay.Valid() {
		return false, fmt.Errorf("%w: check-in date must be before check-out date", domain.ErrValidation)
	}

	return s.checker.IsAvailable(ctx, roomID, stay)
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingResult, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	stay := domain.Stay{CheckIn: input.CheckIn, CheckOut: input.CheckOut}
	if !stay.Valid() {
		return nil, fmt.Errorf("%w: check-in date must be before check-out date", domain.ErrValidation)
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	booking, user, hotel, err := s.reserve(ctx, room, stay, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", room.ID),
		logger.String("user_id", user.ID),
		logger.Int("nights", stay.Nights()),
		logger.Any("total_price", booking.TotalPrice),
	)

	bgCtx := context.WithoutCancel(ctx)
	go s.notifyOwner(bgCtx, hotel, booking, s.owners.NotifyBookingCreated)
	go s.publish(bgCtx, domain.NewBookingEvent(domain.BookingEventCreated, booking))

	snapshot := domain.RoomSnapshot{
		HotelName:    hotel.Name,
		HotelAddress: hotel.Address,
		RoomType:     room.RoomType,
		Nights:       stay.Nights(),
	}
	sent := s.sendConfirmation(ctx, booking, domain.Recipient{Email: user.Email, Name: user.FullName}, snapshot)

	return &domain.BookingResult{Booking: booking, NotificationSent: sent}, nil
}

// reserve holds the room lock only for the check and the insert.
func (s *BookingService) reserve(
	ctx context.Context,
	room *domain.Room,
	stay domain.Stay,
	input domain.CreateBookingInput,
) (*domain.Booking, *domain.User, *domain.Hotel, error) {
	unlock, err := s.locker.Lock(ctx, room.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("lock room: %w", err)
	}
	defer unlock()

	available, err := s.checker.IsAvailable(ctx, room.ID, stay)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, nil, nil, domain.ErrRoomNotAvailable
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get user: %w", err)
	}

	hotel, err := s.hotelRepo.GetByID(ctx, room.HotelID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get hotel: %w", err)
	}

	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodPayAtHotel
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		RoomID:        room.ID,
		HotelID:       hotel.ID,
		CheckIn:       stay.CheckIn.UTC(),
		CheckOut:      stay.CheckOut.UTC(),
		Guests:        input.Guests,
		TotalPrice:    domain.TotalPrice(room.PricePerNight, stay),
		Status:        domain.BookingStatusPending,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, user, hotel, nil
}

func validateBookingInput(input domain.CreateBookingInput) error {
	var missing []string
	if input.UserID == "" {
		missing = append(missing, "user")
	}
	if input.RoomID == "" {
		missing = append(missing, "room")
	}
	if input.CheckIn.IsZero() {
		missing = append(missing, "checkInDate")
	}
	if input.CheckOut.IsZero() {
		missing = append(missing, "checkOutDate")
	}
	if input.Guests <= 0 {
		missing = append(missing, "guests")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return validateID("roomId", input.RoomID)
}

// sendConfirmation never fails the booking. Delivery is detached from the
// request context; only the wait for its outcome is bounded.
func (s *BookingService) sendConfirmation(
	ctx context.Context,
	booking *domain.Booking,
	recipient domain.Recipient,
	snapshot domain.RoomSnapshot,
) bool {
	done := make(chan bool, 1)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.NotifyTimeout)
		defer cancel()

		if err := s.sender.SendBookingConfirmation(sendCtx, booking, recipient, snapshot); err != nil {
			s.logger.Error("failed to send booking confirmation",
				logger.String("booking_id", booking.ID),
				logger.String("email", recipient.Email),
				logger.String("error", err.Error()),
			)
			done <- false
			return
		}
		done <- true
	}()

	timer := time.NewTimer(s.opts.NotifyWait)
	defer timer.Stop()

	select {
	case sent := <-done:
		return sent
	case <-timer.C:
		s.logger.Warn("booking confirmation still in flight",
			logger.String("booking_id", booking.ID),
		)
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *BookingService) notifyOwner(
	ctx context.Context,
	hotel *domain.Hotel,
	booking *domain.Booking,
	notify func(context.Context, *domain.User, *domain.Booking),
) {
	owner, err := s.userRepo.GetByID(ctx, hotel.OwnerID)
	if err != nil {
		s.logger.Error("failed to get hotel owner for notification",
			logger.String("hotel_id", hotel.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, owner, booking)
}

func (s *BookingService) publish(ctx context.Context, event domain.BookingEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("type", string(event.Type)),
			logger.String("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) OwnerDashboard(ctx context.Context, ownerID string) (*domain.Dashboard, error) {
	hotel, err := s.hotelRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner hotel: %w", err)
	}

	bookings, err := s.bookingRepo.ListByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}

	dashboard := &domain.Dashboard{
		TotalBookings: len(bookings),
		Bookings:      bookings,
	}
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		dashboard.TotalRevenue += b.TotalPrice
	}

	return dashboard, nil
}

// CancelExpired releases rooms held by online checkouts that were never paid.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, domain.PaymentMethodStripe, s.opts.CheckoutGrace)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.publish(ctx, domain.NewBookingEvent(domain.BookingEventExpired, b))

		hotel, err := s.hotelRepo.GetByID(ctx, b.HotelID)
		if err != nil {
			s.logger.Error("failed to get hotel for expiry notification",
				logger.String("hotel_id", b.HotelID),
			)
			continue
		}

		s.notifyOwner(ctx, hotel, b, s.owners.NotifyBookingExpired)
	}
}
