package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// GetAllCleaners lists active cleaner profiles, optionally narrowed to a
// service area. The area filter runs in memory: areas live in a JSONB
// list and the directory is small enough that one query page covers it.
func GetAllCleaners(c *fiber.Ctx) error {
	var profiles []models.CleanerProfile
	if err := db.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch cleaners", err))
	}

	if area := c.Query("area"); area != "" {
		filtered := make([]models.CleanerProfile, 0, len(profiles))
		for _, p := range profiles {
			if p.ServesArea(area) {
				filtered = append(filtered, p)
			}
		}
		profiles = filtered
	}

	return c.JSON(fiber.Map{
		"cleaners": profiles,
		"count":    len(profiles),
	})
}

// GetCleaner returns one cleaner profile by id.
func GetCleaner(c *fiber.Ctx) error {
	id := c.Params("id")

	var profile models.CleanerProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner not found",
		})
	}

	return c.JSON(profile)
}

type CleanerProfileInput struct {
	BusinessName    string   `json:"business_name"`
	HourlyRate      float64  `json:"hourly_rate"`
	Bio             *string  `json:"bio"`
	YearsExperience *int     `json:"years_experience"`
	Services        []string `json:"services"`
	ServiceAreas    []string `json:"service_areas"`
	InstantBooking  bool     `json:"instant_booking"`
	ResponseTime    string   `json:"response_time"`
}

func (in *CleanerProfileInput) validate(settings *models.PlatformSettings) error {
	if in.BusinessName == "" {
		return fmt.Errorf("business name is required")
	}
	if in.HourlyRate < settings.MinHourlyRate || in.HourlyRate > settings.MaxHourlyRate {
		return fmt.Errorf("hourly rate must be between %.0f and %.0f", settings.MinHourlyRate, settings.MaxHourlyRate)
	}
	if len(in.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	if len(in.ServiceAreas) == 0 {
		return fmt.Errorf("at least one service area is required")
	}
	return nil
}

// CreateMyProfile creates the caller's cleaner profile. Verification and
// activation follow the platform's onboarding policy.
func CreateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(CleanerProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var existing models.CleanerProfile
	if db.DB.Where("user_id = ?", userID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You already have a cleaner profile",
		})
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load platform settings", err))
	}

	if err := input.validate(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	profile := models.CleanerProfile{
		UserID:          userID,
		BusinessName:    input.BusinessName,
		HourlyRate:      input.HourlyRate,
		Bio:             input.Bio,
		YearsExperience: input.YearsExperience,
		Services:        input.Services,
		ServiceAreas:    input.ServiceAreas,
		InstantBooking:  input.InstantBooking,
		ResponseTime:    input.ResponseTime,
		IsVerified:      !settings.RequireCleanerVerification,
		IsActive:        settings.AutoApproveCleaners || !settings.RequireCleanerVerification,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to create cleaner profile", err))
	}

	// Tell the admins a new cleaner applied, if they asked for it.
	if settings.NotifyCleanerApplications && settings.SupportEmail != "" {
		go func() {
			subject := fmt.Sprintf("New cleaner application: %s", profile.BusinessName)
			body := fmt.Sprintf("<p>A new cleaner profile is awaiting review: <b>%s</b> (profile #%d).</p>", profile.BusinessName, profile.ID)
			if err := utils.SendEmail(settings.SupportEmail, subject, body); err != nil {
				fmt.Printf("Failed to send cleaner application notice: %v\n", err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetMyProfile returns the caller's own cleaner profile.
func GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.CleanerProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner profile not found",
		})
	}

	return c.JSON(profile)
}

// UpdateMyProfile updates the caller's cleaner profile. Verified/active
// flags are admin-only and cannot be changed here.
func UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.CleanerProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner profile not found",
		})
	}

	input := new(CleanerProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load platform settings", err))
	}

	if err := input.validate(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	profile.BusinessName = input.BusinessName
	profile.HourlyRate = input.HourlyRate
	profile.Bio = input.Bio
	profile.YearsExperience = input.YearsExperience
	profile.Services = input.Services
	profile.ServiceAreas = input.ServiceAreas
	profile.InstantBooking = input.InstantBooking
	profile.ResponseTime = input.ResponseTime

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update cleaner profile", err))
	}

	return c.JSON(profile)
}

// UploadProfilePhoto uploads the caller's profile photo to Cloudinary and
// stores the returned URL.
func UploadProfilePhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.CleanerProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner profile not found",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Photo file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to read uploaded file", err))
	}
	defer file.Close()

	url, err := utils.UploadProfilePhoto(file, fmt.Sprintf("cleaner_%d", profile.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to upload photo", err))
	}

	profile.PhotoURL = url
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update cleaner profile", err))
	}

	return c.JSON(fiber.Map{
		"photo_url": url,
	})
}
