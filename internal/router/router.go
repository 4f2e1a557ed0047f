package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListCustomers(c *ginext.Context)
	GetCustomerBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Rooms
		api.POST("/rooms", h.RegisterRoom)
		api.GET("/rooms", h.ListRooms)

		// Bookings
		api.POST("/bookings", h.CreateBooking)

		// Customers
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:name", h.GetCustomerBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
