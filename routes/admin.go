package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/controllers/admin"
	"github.com/cleaningnetwork/marketplace-api/middleware"
	"github.com/cleaningnetwork/marketplace-api/models"
)

// SetupAdminRoutes configures the admin console routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	// Platform settings
	group.Get("/settings", admin.GetSettings)
	group.Put("/settings", admin.UpdateSettings)

	// User management
	group.Get("/users", admin.GetAllUsers)
	group.Put("/users/:id", admin.UpdateUser)
	group.Delete("/users/:id", admin.DeleteUser)

	// Cleaner management
	group.Get("/cleaners", admin.GetAllCleaners)
	group.Put("/cleaners/:id", admin.UpdateCleaner)
	group.Delete("/cleaners/:id", admin.DeleteCleaner)

	// Review moderation
	group.Delete("/reviews/:id", admin.DeleteReview)

	// Bank-transfer payment verification
	group.Get("/payments/pending", admin.GetPendingPayments)
	group.Post("/payments/:id/verify", admin.VerifyPayment)
	group.Post("/payments/:id/reject", admin.RejectPayment)
}
