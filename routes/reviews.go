package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/controllers"
	"github.com/cleaningnetwork/marketplace-api/middleware"
	"github.com/cleaningnetwork/marketplace-api/models"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	reviews := app.Group("/reviews")

	// Public routes
	reviews.Get("/", controllers.GetReviews)
	reviews.Get("/stats", controllers.GetReviewStats)

	// Customer routes
	reviews.Get("/eligible", middleware.Protected(), middleware.RequireRole(models.RoleCustomer), controllers.GetEligibleBookings)
	reviews.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleCustomer), controllers.CreateReview)
}
