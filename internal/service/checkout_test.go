package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	hotelRepo   *mocks.MockHotelRepo
	userRepo    *mocks.MockUserRepo
	gateway     *mocks.MockPaymentGateway
	svc         *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	f := &checkoutFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		hotelRepo:   mocks.NewMockHotelRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
	}
	f.svc = NewCheckoutService(
		f.bookingRepo, f.roomRepo, f.hotelRepo, f.userRepo, f.gateway,
		CheckoutOptions{
			Currency:   "USD",
			SuccessURL: "https://example.com/my-bookings",
			CancelURL:  "https://example.com/my-bookings?cancelled=1",
			SessionTTL: 30 * time.Minute,
			Timeout:    time.Second,
		},
		newTestLogger(t),
	)
	return f
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         testBookingID,
		UserID:     "u1",
		RoomID:     testRoomID,
		HotelID:    "h1",
		CheckIn:    date(time.January, 1),
		CheckOut:   date(time.January, 4),
		Guests:     2,
		TotalPrice: 300.25,
		Status:     domain.BookingStatusPending,
	}
}

func TestCheckoutService_StartCheckout_Success(t *testing.T) {
	f := newCheckoutFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.gateway.EXPECT().Name().Return("Stripe")

	expiresAt := time.Now().Add(30 * time.Minute)
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req domain.CheckoutRequest) {
			assert.Equal(t, testBookingID, req.BookingID)
			assert.Equal(t, int64(30025), req.AmountMinor)
			assert.Equal(t, "usd", req.Currency)
			assert.Equal(t, "Seaside - Double Bed", req.ProductName)
			assert.Equal(t, "alice@example.com", req.CustomerEmail)
			assert.NotEmpty(t, req.IdempotencyKey)
			// stripe отклоняет expires_at ближе чем через 30 минут
			assert.GreaterOrEqual(t, time.Until(req.ExpiresAt), 30*time.Minute+30*time.Second)
		}).
		Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1", ExpiresAt: expiresAt}, nil)
	f.bookingRepo.EXPECT().AttachCheckout(mock.Anything, testBookingID, "cs_1", expiresAt).Return(nil)

	url, err := f.svc.StartCheckout(context.Background(), testBookingID, "u1")

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", url)
}

func TestCheckoutService_StartCheckout_BookingNotFound(t *testing.T) {
	f := newCheckoutFixture(t)
	const missing = "00000000-0000-4000-8000-000000000000"
	f.bookingRepo.EXPECT().GetByID(mock.Anything, missing).Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.StartCheckout(context.Background(), missing, "u1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCheckoutService_StartCheckout_MalformedBookingID(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.StartCheckout(context.Background(), "abc", "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckoutService_StartCheckout_ForeignBooking(t *testing.T) {
	f := newCheckoutFixture(t)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)

	_, err := f.svc.StartCheckout(context.Background(), testBookingID, "someone-else")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCheckoutService_StartCheckout_AlreadyPaid(t *testing.T) {
	f := newCheckoutFixture(t)
	b := pendingBooking()
	b.IsPaid = true
	b.Status = domain.BookingStatusConfirmed
	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(b, nil)

	_, err := f.svc.StartCheckout(context.Background(), testBookingID, "u1")

	assert.ErrorIs(t, err, domain.ErrBookingAlreadyPaid)
}

func TestCheckoutService_StartCheckout_RoomMissing(t *testing.T) {
	f := newCheckoutFixture(t)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(nil, domain.ErrRoomNotFound)

	_, err := f.svc.StartCheckout(context.Background(), testBookingID, "u1")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestCheckoutService_StartCheckout_GatewayRejects(t *testing.T) {
	f := newCheckoutFixture(t)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(nil, errors.New("invalid currency"))

	_, err := f.svc.StartCheckout(context.Background(), testBookingID, "u1")

	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestCheckoutService_StartCheckout_GatewayTimeout(t *testing.T) {
	f := newCheckoutFixture(t)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	_, err := f.svc.StartCheckout(context.Background(), testBookingID, "u1")

	assert.ErrorIs(t, err, domain.ErrGatewayTimeout)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(30000), ToMinorUnits(300))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(1), ToMinorUnits(0.005))
}
