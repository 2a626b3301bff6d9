package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/controllers"
	"github.com/cleaningnetwork/marketplace-api/middleware"
	"github.com/cleaningnetwork/marketplace-api/models"
)

// SetupCleanerRoutes configures the public cleaner directory and the
// cleaner's own profile management routes
func SetupCleanerRoutes(app *fiber.App) {
	cleaners := app.Group("/cleaners")

	// Own-profile routes go first so "profile" is not captured by ":id"
	profile := cleaners.Group("/profile", middleware.Protected(), middleware.RequireRole(models.RoleCleaner))
	profile.Get("/", controllers.GetMyProfile)
	profile.Post("/", controllers.CreateMyProfile)
	profile.Put("/", controllers.UpdateMyProfile)
	profile.Post("/photo", controllers.UploadProfilePhoto)

	// Public directory
	cleaners.Get("/", controllers.GetAllCleaners)
	cleaners.Get("/:id", controllers.GetCleaner)
	cleaners.Get("/:id/reviews", controllers.GetCleanerReviews)
	cleaners.Get("/:id/reviews/stats", controllers.GetCleanerReviewStats)
}
