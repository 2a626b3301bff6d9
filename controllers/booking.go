package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// CreateBooking creates a pending booking for the authenticated customer.
// Hours and scheduling are validated against the platform policy bounds.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type BookingInput struct {
		ServiceType   string  `json:"service_type"`
		ScheduledDate string  `json:"scheduled_date"` // "YYYY-MM-DD"
		Hours         int     `json:"hours"`
		Address       string  `json:"address"`
		CleanerID     *uint   `json:"cleaner_id"`
		TotalAmount   float64 `json:"total_amount"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.ServiceType == "" || input.ScheduledDate == "" || input.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	scheduled, err := time.Parse("2006-01-02", input.ScheduledDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, use YYYY-MM-DD",
		})
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load platform settings", err))
	}

	if settings.MaintenanceMode {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "The platform is temporarily down for maintenance",
		})
	}
	if input.Hours < settings.MinBookingHours || input.Hours > settings.MaxBookingHours {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Booking must be between %d and %d hours", settings.MinBookingHours, settings.MaxBookingHours),
		})
	}
	latest := time.Now().AddDate(0, 0, settings.AdvanceBookingDays)
	if scheduled.After(latest) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Bookings can be made at most %d days in advance", settings.AdvanceBookingDays),
		})
	}

	booking := models.Booking{
		CustomerID:    userID,
		ServiceType:   input.ServiceType,
		ScheduledDate: input.ScheduledDate,
		Hours:         input.Hours,
		Address:       input.Address,
		TotalAmount:   input.TotalAmount,
		Status:        models.StatusPending,
	}

	// Snapshot the cleaner's business name so the booking stays
	// displayable if the profile is deleted later.
	if input.CleanerID != nil {
		var profile models.CleanerProfile
		if err := db.DB.Where("user_id = ? AND is_active = ?", *input.CleanerID, true).First(&profile).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cleaner not found or inactive",
			})
		}
		booking.CleanerID = input.CleanerID
		booking.CleanerName = profile.BusinessName
		if profile.InstantBooking && settings.AllowInstantBooking {
			booking.Status = models.StatusConfirmed
		}
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to create booking", err))
	}

	// Every booking opens a bank-transfer payment that an admin verifies
	// manually before the job is confirmed.
	payment := models.Payment{
		BookingID: booking.ID,
		Amount:    booking.TotalAmount,
		Method:    "bank_transfer",
		Status:    models.PaymentPending,
	}
	if err := db.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to record payment", err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking": booking,
		"payment": payment,
	})
}

// GetMyBookings lists the caller's bookings: as customer for customers,
// as assigned cleaner for cleaners.
func GetMyBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	query := db.DB.Order("scheduled_date DESC")
	if role == models.RoleCleaner {
		query = query.Where("cleaner_id = ?", userID)
	} else {
		query = query.Where("customer_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch bookings", err))
	}

	return c.JSON(bookings)
}

// GetBooking returns one booking visible to the caller.
func GetBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	isCleaner := booking.CleanerID != nil && *booking.CleanerID == userID
	if role != models.RoleAdmin && booking.CustomerID != userID && !isCleaner {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to view this booking",
		})
	}

	return c.JSON(booking)
}

// UpdateBookingStatus moves a booking through its status machine. The
// assigned cleaner confirms and completes; admins may apply any legal
// transition.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)
	id := c.Params("id")

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if role != models.RoleAdmin {
		if booking.CleanerID == nil || *booking.CleanerID != userID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to update this booking",
			})
		}
	}

	if err := booking.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorResponse("Invalid status transition", err))
	}

	return c.JSON(booking)
}

// CancelBooking cancels the caller's own booking, subject to the
// cancellation window.
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to cancel this booking",
		})
	}

	var settings models.PlatformSettings
	if err := db.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load platform settings", err))
	}

	scheduled, err := time.Parse("2006-01-02", booking.ScheduledDate)
	if err == nil {
		deadline := scheduled.Add(-time.Duration(settings.CancellationWindowHours) * time.Hour)
		if time.Now().After(deadline) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Bookings must be cancelled at least %d hours in advance", settings.CancellationWindowHours),
			})
		}
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorResponse("Invalid status transition", err))
	}

	return c.JSON(booking)
}

// AssignCleaner sets or replaces the cleaner on a pending booking and
// refreshes the denormalized name snapshot.
func AssignCleaner(c *fiber.Ctx) error {
	id := c.Params("id")

	type AssignInput struct {
		CleanerID uint `json:"cleaner_id"`
	}
	input := new(AssignInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.Status != models.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only pending bookings can be reassigned",
		})
	}

	var profile models.CleanerProfile
	if err := db.DB.Where("user_id = ?", input.CleanerID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cleaner profile not found",
		})
	}

	booking.CleanerID = &input.CleanerID
	booking.CleanerName = profile.BusinessName
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to assign cleaner", err))
	}

	return c.JSON(booking)
}
