package models

import (
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Payment records a bank-transfer payment awaiting manual verification by
// an admin. Verification and rejection both notify the customer by email.
type Payment struct {
	gorm.Model
	BookingID       uint          `json:"booking_id"`
	Booking         Booking       `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Amount          float64       `json:"amount"`
	Method          string        `json:"method" gorm:"default:bank_transfer"`
	Status          PaymentStatus `json:"status" gorm:"default:pending"`
	RejectionReason *string       `json:"rejection_reason"`
}
