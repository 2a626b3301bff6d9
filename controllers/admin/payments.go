package admin

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// GetPendingPayments lists bank-transfer payments awaiting verification.
func GetPendingPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := db.DB.Preload("Booking").
		Where("status = ?", models.PaymentPending).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch payments", err))
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"total":    len(payments),
	})
}

// VerifyPayment marks a pending payment as verified, confirms its booking
// and emails the customer.
func VerifyPayment(c *fiber.Ctx) error {
	payment, booking, customer, ok := loadPendingPayment(c)
	if !ok {
		return nil
	}

	payment.Status = models.PaymentVerified
	if err := db.DB.Save(payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update payment", err))
	}

	if booking.Status == models.StatusPending {
		if err := booking.UpdateStatus(db.DB, models.StatusConfirmed); err != nil {
			log.Printf("Failed to confirm booking %d after payment verification: %v", booking.ID, err)
		}
	}

	notifyPaymentStatus("verified", payment, booking, customer, "")

	return c.JSON(payment)
}

// RejectPayment marks a pending payment as rejected, cancels its booking
// and emails the customer with the reason.
func RejectPayment(c *fiber.Ctx) error {
	payment, booking, customer, ok := loadPendingPayment(c)
	if !ok {
		return nil
	}

	type RejectInput struct {
		Reason string `json:"reason"`
	}
	input := new(RejectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	payment.Status = models.PaymentRejected
	payment.RejectionReason = models.TrimComment(input.Reason)
	if err := db.DB.Save(payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to update payment", err))
	}

	if booking.Status != models.StatusCanceled && booking.Status != models.StatusCompleted {
		if err := booking.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
			log.Printf("Failed to cancel booking %d after payment rejection: %v", booking.ID, err)
		}
	}

	notifyPaymentStatus("rejected", payment, booking, customer, input.Reason)

	return c.JSON(payment)
}

// loadPendingPayment resolves a pending payment with its booking and
// customer. On failure the error response is already written and ok is
// false.
func loadPendingPayment(c *fiber.Ctx) (*models.Payment, *models.Booking, *models.User, bool) {
	id := c.Params("id")

	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Payment not found",
		})
		return nil, nil, nil, false
	}

	if payment.Status != models.PaymentPending {
		c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Payment is already %s", payment.Status),
		})
		return nil, nil, nil, false
	}

	var booking models.Booking
	if err := db.DB.First(&booking, payment.BookingID).Error; err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found for this payment",
		})
		return nil, nil, nil, false
	}

	var customer models.User
	if err := db.DB.First(&customer, booking.CustomerID).Error; err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer not found for this payment",
		})
		return nil, nil, nil, false
	}

	return &payment, &booking, &customer, true
}

// notifyPaymentStatus sends the verified/rejected email without blocking
// the response; a failed send is logged, not surfaced, since the payment
// state change already committed.
func notifyPaymentStatus(kind string, payment *models.Payment, booking *models.Booking, customer *models.User, reason string) {
	notification := utils.PaymentNotification{
		Type:            kind,
		CustomerEmail:   customer.Email,
		CustomerName:    customer.FullName,
		PaymentID:       fmt.Sprintf("%d", payment.ID),
		BookingID:       fmt.Sprintf("%d", booking.ID),
		Amount:          payment.Amount,
		CleanerName:     booking.CleanerName,
		BookingDate:     booking.ScheduledDate,
		RejectionReason: reason,
	}

	go func() {
		if err := utils.SendPaymentNotification(notification); err != nil {
			log.Printf("Failed to send payment %s email for payment %d: %v", kind, payment.ID, err)
		}
	}()
}
