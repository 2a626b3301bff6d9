package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/controllers"
	"github.com/cleaningnetwork/marketplace-api/middleware"
	"github.com/cleaningnetwork/marketplace-api/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/bookings", middleware.Protected())

	bookings.Post("/", middleware.RequireRole(models.RoleCustomer), controllers.CreateBooking)
	bookings.Get("/", controllers.GetMyBookings)
	bookings.Get("/:id", controllers.GetBooking)
	bookings.Patch("/:id/status", controllers.UpdateBookingStatus)
	bookings.Post("/:id/cancel", middleware.RequireRole(models.RoleCustomer), controllers.CancelBooking)
	bookings.Post("/:id/assign", middleware.RequireRole(models.RoleAdmin), controllers.AssignCleaner)
}
