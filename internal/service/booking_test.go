package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// waitGroupDone fails the test if the background notifications are not
// delivered within a second.
func waitGroupDone(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background notifications did not finish")
	}
}

func date(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	hotelRepo   *mocks.MockHotelRepo
	userRepo    *mocks.MockUserRepo
	locker      *mocks.MockRoomLocker
	sender      *mocks.MockConfirmationSender
	owners      *mocks.MockOwnerNotifier
	publisher   *mocks.MockEventPublisher
	svc         *BookingService
}

func newBookingFixture(t *testing.T, opts BookingOptions) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		hotelRepo:   mocks.NewMockHotelRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		locker:      mocks.NewMockRoomLocker(t),
		sender:      mocks.NewMockConfirmationSender(t),
		owners:      mocks.NewMockOwnerNotifier(t),
		publisher:   mocks.NewMockEventPublisher(t),
	}
	log := newTestLogger(t)
	f.svc = NewBookingService(
		f.bookingRepo, f.roomRepo, f.hotelRepo, f.userRepo,
		NewAvailabilityChecker(f.bookingRepo, log),
		f.locker, f.sender, f.owners, f.publisher,
		opts, log,
	)
	return f
}

func defaultBookingOptions() BookingOptions {
	return BookingOptions{
		NotifyWait:    time.Second,
		NotifyTimeout: time.Second,
		CheckoutGrace: time.Minute,
	}
}

const (
	testRoomID    = "3f0c2a4e-8d1b-4c6e-9a57-1b2d3e4f5a60"
	testBookingID = "9b6e1f2a-4c3d-4e5f-8a7b-0c1d2e3f4a5b"
	otherRoomID   = "c4d5e6f7-0a1b-4c2d-9e3f-4a5b6c7d8e9f"
)

var (
	testRoom  = &domain.Room{ID: testRoomID, HotelID: "h1", RoomType: domain.RoomTypeDouble, PricePerNight: 100, IsAvailable: true}
	testHotel = &domain.Hotel{ID: "h1", OwnerID: "o1", Name: "Seaside", Address: "1 Beach Rd", City: "Nice"}
	testGuest = &domain.User{ID: "u1", FullName: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	testOwner = &domain.User{ID: "o1", FullName: "Olga", Email: "olga@example.com", Role: domain.RoleHotelOwner}
)

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		UserID:   "u1",
		RoomID:   testRoomID,
		CheckIn:  date(time.January, 1),
		CheckOut: date(time.January, 4),
		Guests:   2,
	}
}

// expectSuccessfulCreate sets up every call on the happy path up to persistence.
// The returned group is done once the owner and the broker have been notified.
func (f *bookingFixture) expectSuccessfulCreate() *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(2)

	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(func() {}, nil)
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return(nil, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "o1").Return(testOwner, nil)
	f.owners.EXPECT().NotifyBookingCreated(mock.Anything, testOwner, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking) { wg.Done() }).
		Return()
	f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.BookingEventCreated
	})).
		Run(func(context.Context, domain.BookingEvent) { wg.Done() }).
		Return(nil)
	return &wg
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	background := f.expectSuccessfulCreate()

	recipient := domain.Recipient{Email: "alice@example.com", Name: "Alice"}
	f.sender.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything, recipient, mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, _ domain.Recipient, room domain.RoomSnapshot) {
			assert.Equal(t, 3, room.Nights)
			assert.Equal(t, "Seaside", room.HotelName)
		}).
		Return(nil)

	res, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, res.NotificationSent)
	assert.Equal(t, 300.0, res.Booking.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, res.Booking.Status)
	assert.Equal(t, domain.PaymentMethodPayAtHotel, res.Booking.PaymentMethod)
	assert.False(t, res.Booking.IsPaid)
	assert.Equal(t, "h1", res.Booking.HotelID)
	assert.NotEmpty(t, res.Booking.ID)

	waitGroupDone(t, background)
}

func TestBookingService_Create_KeepsPaymentMethod(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	background := f.expectSuccessfulCreate()
	f.sender.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.PaymentMethod = domain.PaymentMethodStripe

	res, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodStripe, res.Booking.PaymentMethod)

	waitGroupDone(t, background)
}

func TestBookingService_Create_NotificationFailureStillSucceeds(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	background := f.expectSuccessfulCreate()
	f.sender.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused"))

	res, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.False(t, res.NotificationSent)

	waitGroupDone(t, background)
}

func TestBookingService_Create_SlowNotificationDoesNotBlock(t *testing.T) {
	opts := defaultBookingOptions()
	opts.NotifyWait = 20 * time.Millisecond
	f := newBookingFixture(t, opts)
	background := f.expectSuccessfulCreate()

	release := make(chan struct{})
	background.Add(1)
	f.sender.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.Booking, domain.Recipient, domain.RoomSnapshot) error {
			defer background.Done()
			<-release
			return nil
		})

	res, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.False(t, res.NotificationSent)

	close(release)
	waitGroupDone(t, background)
}

func TestBookingService_Create_ReleasesLockBeforeNotifying(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	var unlocked atomic.Bool
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(func() { unlocked.Store(true) }, nil)
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return(nil, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) {
			assert.False(t, unlocked.Load(), "insert must run under the lock")
		}).
		Return(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	f.userRepo.EXPECT().GetByID(mock.Anything, "o1").Return(testOwner, nil)
	f.owners.EXPECT().NotifyBookingCreated(mock.Anything, testOwner, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking) { wg.Done() }).
		Return()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.BookingEvent) { wg.Done() }).
		Return(nil)
	f.sender.EXPECT().SendBookingConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking, domain.Recipient, domain.RoomSnapshot) {
			assert.True(t, unlocked.Load(), "room lock still held while sending email")
		}).
		Return(nil)

	res, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, res.NotificationSent)
	waitGroupDone(t, &wg)
}

func TestBookingService_Create_MalformedRoomID(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	input := validInput()
	input.RoomID = "not-a-uuid"

	_, err := f.svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_EqualDatesRejected(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	input := validInput()
	input.CheckOut = input.CheckIn

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_CheckOutBeforeCheckIn(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	input := validInput()
	input.CheckIn, input.CheckOut = input.CheckOut, input.CheckIn

	_, err := f.svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
	}{
		{"no room", func(in *domain.CreateBookingInput) { in.RoomID = "" }},
		{"no user", func(in *domain.CreateBookingInput) { in.UserID = "" }},
		{"no check-in", func(in *domain.CreateBookingInput) { in.CheckIn = time.Time{} }},
		{"no check-out", func(in *domain.CreateBookingInput) { in.CheckOut = time.Time{} }},
		{"no guests", func(in *domain.CreateBookingInput) { in.Guests = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t, defaultBookingOptions())
			input := validInput()
			tt.mutate(&input)

			_, err := f.svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_RoomNotFound(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(nil, domain.ErrRoomNotFound)

	_, err := f.svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_Create_NotAvailable(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	unlocked := false
	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(func() { unlocked = true }, nil)
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return([]*domain.Booking{
		{ID: "b0", RoomID: testRoomID, CheckIn: date(time.January, 5), CheckOut: date(time.January, 10), Status: domain.BookingStatusConfirmed},
	}, nil)

	input := validInput()
	input.CheckIn = date(time.January, 8)
	input.CheckOut = date(time.January, 12)

	_, err := f.svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)
	assert.True(t, unlocked)
}

func TestBookingService_Create_LookupFailureFailsClosed(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(func() {}, nil)
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return(nil, errors.New("db down"))

	res, err := f.svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.Nil(t, res)
}

func TestBookingService_Create_ConstraintViolation(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(func() {}, nil)
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return(nil, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(testGuest, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRoomNotAvailable)

	_, err := f.svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)
}

func TestBookingService_Create_LockError(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	f.roomRepo.EXPECT().GetByID(mock.Anything, testRoomID).Return(testRoom, nil)
	f.locker.EXPECT().Lock(mock.Anything, testRoomID).Return(nil, context.DeadlineExceeded)

	_, err := f.svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBookingService_CheckAvailability_EmptyRoom(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	f.bookingRepo.EXPECT().ListActiveByRoom(mock.Anything, testRoomID, mock.Anything).Return(nil, nil)

	ok, err := f.svc.CheckAvailability(context.Background(), testRoomID, date(time.March, 1), date(time.March, 2))

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBookingService_CheckAvailability_MalformedRoomID(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	_, err := f.svc.CheckAvailability(context.Background(), "42; drop table rooms", date(time.March, 1), date(time.March, 2))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CheckAvailability_InvalidRange(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	_, err := f.svc.CheckAvailability(context.Background(), testRoomID, date(time.March, 2), date(time.March, 2))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_OwnerDashboard(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	views := []*domain.BookingView{
		{Booking: domain.Booking{ID: testBookingID, TotalPrice: 300, Status: domain.BookingStatusConfirmed}},
		{Booking: domain.Booking{ID: "b2", TotalPrice: 150, Status: domain.BookingStatusPending}},
		{Booking: domain.Booking{ID: "b3", TotalPrice: 999, Status: domain.BookingStatusCancelled}},
	}
	f.hotelRepo.EXPECT().GetByOwner(mock.Anything, "o1").Return(testHotel, nil)
	f.bookingRepo.EXPECT().ListByHotel(mock.Anything, "h1").Return(views, nil)

	d, err := f.svc.OwnerDashboard(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, 3, d.TotalBookings)
	assert.Equal(t, 450.0, d.TotalRevenue)
	assert.Len(t, d.Bookings, 3)
}

func TestBookingService_OwnerDashboard_NoHotel(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	f.hotelRepo.EXPECT().GetByOwner(mock.Anything, "u1").Return(nil, domain.ErrHotelNotFound)

	_, err := f.svc.OwnerDashboard(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestBookingService_ListByUser(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	views := []*domain.BookingView{{Booking: domain.Booking{ID: testBookingID}, HotelName: "Seaside"}}
	f.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(views, nil)

	res, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, views, res)
}

func TestBookingService_CancelExpired(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())

	expired := []*domain.Booking{{ID: testBookingID, HotelID: "h1", RoomID: testRoomID, UserID: "u1"}}
	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, domain.PaymentMethodStripe, time.Minute).Return(expired, nil)
	f.hotelRepo.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "o1").Return(testOwner, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.BookingEventExpired && e.BookingID == testBookingID
	})).Return(nil)

	done := make(chan struct{})
	f.owners.EXPECT().NotifyBookingExpired(mock.Anything, testOwner, expired[0]).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	res, err := f.svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expired, res)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("owner was not notified")
	}
}

func TestBookingService_CancelExpired_Error(t *testing.T) {
	f := newBookingFixture(t, defaultBookingOptions())
	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, domain.PaymentMethodStripe, time.Minute).Return(nil, errors.New("db error"))

	_, err := f.svc.CancelExpired(context.Background())

	assert.Error(t, err)
}
