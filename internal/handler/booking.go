package handler

import (
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	checkIn, err := dto.ParseDate("checkInDate", req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}
	checkOut, err := dto.ParseDate("checkOutDate", req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	available, err := h.bookingService.CheckAvailability(c.Request.Context(), req.Room, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "isAvailable": available})
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	checkIn, err := dto.ParseDate("checkInDate", req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}
	checkOut, err := dto.ParseDate("checkOutDate", req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		UserID:        id.UserID,
		RoomID:        req.Room,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "Booking created successfully"
	if !res.NotificationSent {
		message = "Booking created successfully, confirmation email is pending"
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Success:          true,
		Message:          message,
		Booking:          dto.ToBookingResponse(res.Booking),
		NotificationSent: res.NotificationSent,
	})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), id.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "bookings": dto.ToBookingViews(bookings)})
}

func (h *Handler) GetHotelBookings(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	dashboard, err := h.bookingService.OwnerDashboard(c.Request.Context(), id.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "dashboardData": dto.ToDashboardResponse(dashboard)})
}

func (h *Handler) StripePayment(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	url, err := h.checkoutService.StartCheckout(c.Request.Context(), c.Param("id"), id.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "url": url})
}
