package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// GetAllCleaners lists every cleaner profile, including inactive and
// unverified ones, with the owning user loaded.
func GetAllCleaners(c *fiber.Ctx) error {
	var profiles []models.CleanerProfile
	if err := db.DB.Preload("User").Order("created_at DESC").Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch cleaners", err))
	}

	for i := range profiles {
		profiles[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"cleaners": profiles,
		"total":    len(profiles),
	})
}

// UpdateCleaner edits a cleaner profile including the admin-only
// verified/active flags.
func UpdateCleaner(c *fiber.Ctx) error {
	id := c.Params("id")

	type CleanerInput struct {
		BusinessName    string   `json:"business_name"`
		HourlyRate      float64  `json:"hourly_rate"`
		Bio             *string  `json:"bio"`
		YearsExperience *int     `json:"years_experience"`
		Services        []string `json:"services"`
		ServiceAreas    []string `json:"service_areas"`
		IsVerified      bool     `json:"is_verified"`
		IsActive        bool     `json:"is_active"`
		InstantBooking  bool     `json:"instant_booking"`
	}
	input := new(CleanerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.BusinessName == "" || len(input.Services) == 0 || len(input.ServiceAreas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Business name, services and service areas are required",
		})
	}

	var profile models.CleanerProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner not found",
		})
	}

	profile.BusinessName = input.BusinessName
	profile.HourlyRate = input.HourlyRate
	profile.Bio = input.Bio
	profile.YearsExperience = input.YearsExperience
	profile.Services = input.Services
	profile.ServiceAreas = input.ServiceAreas
	profile.IsVerified = input.IsVerified
	profile.IsActive = input.IsActive
	profile.InstantBooking = input.InstantBooking

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update cleaner", err))
	}

	return c.JSON(profile)
}

// DeleteCleaner removes a cleaner profile. Open bookings assigned to that
// cleaner are unassigned in the same transaction; the denormalized
// cleaner_name snapshot stays so past bookings remain displayable, and
// reviews keep their profile reference for history.
func DeleteCleaner(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile models.CleanerProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("cleaner_id = ? AND status IN ?", profile.UserID,
				[]models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
			Update("cleaner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&profile).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to delete cleaner", err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
