package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetUserData(c *ginext.Context)
	StoreRecentSearchedCity(c *ginext.Context)
	RegisterHotel(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	ToggleRoomAvailability(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetHotelBookings(c *ginext.Context)
	StripePayment(c *ginext.Context)
	StripeWebhook(c *ginext.Context)
}

// InitRouter mounts the API. auth resolves the caller from the bearer token,
// owner additionally requires the hotelOwner role and must run after auth.
func InitRouter(mode string, h Handler, auth, owner ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// User
		user := api.Group("/user", auth)
		user.GET("", h.GetUserData)
		user.POST("/recent-searched-cities", h.StoreRecentSearchedCity)

		// Hotels
		api.POST("/hotels", auth, h.RegisterHotel)
		api.GET("/hotels/bookings", auth, owner, h.GetHotelBookings)

		// Rooms
		rooms := api.Group("/rooms", auth, owner)
		rooms.POST("", h.CreateRoom)
		rooms.POST("/toggle-availability", h.ToggleRoomAvailability)

		// Bookings
		api.POST("/bookings/check-availability", h.CheckAvailability)
		api.POST("/bookings/book", auth, h.CreateBooking)
		api.GET("/bookings/me", auth, h.GetUserBookings)
		api.POST("/bookings/:id/pay", auth, h.StripePayment)

		// Stripe webhook, подпись проверяется по сырому телу
		api.POST("/stripe", h.StripeWebhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
