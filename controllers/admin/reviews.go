package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/redis"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// DeleteReview removes a review that violates platform rules. Deleting
// the review makes its booking reviewable again, which is intended:
// the customer may resubmit a compliant one.
func DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")

	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	if err := db.DB.Unscoped().Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to delete review", err))
	}

	redis.InvalidatePrefix(redis.ReviewsPrefix)

	return c.SendStatus(fiber.StatusNoContent)
}
