package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/redis"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// GetSettings returns the singleton platform settings row. A missing row
// is a load failure, not an empty result: the seed migration guarantees
// it exists.
func GetSettings(c *fiber.Ctx) error {
	var cached models.PlatformSettings
	if redis.CacheGet(redis.SettingsKey, &cached) {
		return c.JSON(cached)
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load settings", err))
	}

	redis.CacheSet(redis.SettingsKey, settings)

	return c.JSON(settings)
}

// UpdateSettings persists the full editable field set. A save that changes
// nothing is skipped rather than written: the dirty flag is the field-wise
// comparison against the stored row. On a real change every field is
// written unconditionally, the DB stamps updated_at, and the row is
// re-read so the response carries the authoritative timestamp.
func UpdateSettings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(models.PlatformSettings)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load settings", err))
	}

	if !settings.Changed(input) {
		return c.JSON(fiber.Map{
			"changed":  false,
			"settings": settings,
		})
	}

	fields := input.EditableFields()
	fields["updated_by"] = userID

	if err := db.DB.Model(&models.PlatformSettings{}).
		Where("id = ?", settings.ID).
		Updates(fields).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to save settings", err))
	}

	// Reload for the DB-stamped updated_at instead of guessing it.
	var saved models.PlatformSettings
	if err := db.DB.First(&saved, settings.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to reload settings", err))
	}

	redis.Invalidate(redis.SettingsKey)

	return c.JSON(fiber.Map{
		"changed":  true,
		"settings": saved,
	})
}
