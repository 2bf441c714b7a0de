package handler

import (
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RegisterHotel(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	hotel, err := h.catalogService.RegisterHotel(c.Request.Context(), id.UserID, domain.RegisterHotelInput{
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		City:    req.City,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{
		"success": true,
		"message": "Hotel registered successfully",
		"hotel":   dto.ToHotelResponse(hotel),
	})
}

func (h *Handler) CreateRoom(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	room, err := h.catalogService.CreateRoom(c.Request.Context(), id.UserID, domain.CreateRoomInput{
		RoomType:      domain.RoomType(req.RoomType),
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Images:        req.Images,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{
		"success": true,
		"message": "Room created successfully",
		"room":    dto.ToRoomResponse(room),
	})
}

func (h *Handler) ToggleRoomAvailability(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.ToggleAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	room, err := h.catalogService.ToggleRoomAvailability(c.Request.Context(), id.UserID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"success":     true,
		"message":     "Room availability updated",
		"isAvailable": room.IsAvailable,
	})
}
