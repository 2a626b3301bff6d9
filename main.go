package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/cleaningnetwork/marketplace-api/db"

	"github.com/cleaningnetwork/marketplace-api/redis"

	"github.com/cleaningnetwork/marketplace-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("The Cleaning Network API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCleanerRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupAdminRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
