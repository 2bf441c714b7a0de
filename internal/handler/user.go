package handler

import (
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	res, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		FullName:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Image:          req.Image,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    dto.ToUserResponse(res.User),
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	res, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    dto.ToUserResponse(res.User),
	})
}

func (h *Handler) GetUserData(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, ginext.H{
		"success":              true,
		"role":                 resp.Role,
		"recentSearchedCities": resp.RecentSearchedCities,
		"user":                 resp,
	})
}

func (h *Handler) StoreRecentSearchedCity(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.RecentCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	cities, err := h.userService.StoreRecentCity(c.Request.Context(), id.UserID, req.RecentSearchedCity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"success":              true,
		"message":              "City added",
		"recentSearchedCities": cities,
	})
}
