package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.AuthResult, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	StoreRecentCity(ctx context.Context, userID, city string) ([]string, error)
}

type CatalogSvc interface {
	RegisterHotel(ctx context.Context, ownerID string, input domain.RegisterHotelInput) (*domain.Hotel, error)
	CreateRoom(ctx context.Context, ownerID string, input domain.CreateRoomInput) (*domain.Room, error)
	ToggleRoomAvailability(ctx context.Context, ownerID, roomID string) (*domain.Room, error)
}

type BookingSvc interface {
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingView, error)
	OwnerDashboard(ctx context.Context, ownerID string) (*domain.Dashboard, error)
}

type CheckoutSvc interface {
	StartCheckout(ctx context.Context, bookingID, userID string) (string, error)
}

type WebhookSvc interface {
	HandleProviderEvent(ctx context.Context, payload []byte, signature string) error
}

type Handler struct {
	userService     UserSvc
	catalogService  CatalogSvc
	bookingService  BookingSvc
	checkoutService CheckoutSvc
	webhookService  WebhookSvc
}

func NewHandler(
	userService UserSvc,
	catalogService CatalogSvc,
	bookingService BookingSvc,
	checkoutService CheckoutSvc,
	webhookService WebhookSvc,
) *Handler {
	return &Handler{
		userService:     userService,
		catalogService:  catalogService,
		bookingService:  bookingService,
		checkoutService: checkoutService,
		webhookService:  webhookService,
	}
}

// identity is set by middleware.Auth; routes without it are a wiring bug.
func (h *Handler) identity(c *ginext.Context) (*domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("not authorized"))
		return nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrRoomNotAvailable),
		errors.Is(err, domain.ErrBookingAlreadyPaid),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrHotelAlreadyRegistered),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrGatewayTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.Fail("payment provider timed out, try again"))

	case errors.Is(err, domain.ErrGateway):
		c.JSON(http.StatusBadGateway, dto.Fail("payment provider error"))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}
