package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Booking is a customer's cleaning appointment. CleanerID points at the
// cleaner's user account and is nullable: assignment happens after
// creation, and the reference is cleared when the cleaner profile is
// deleted. CleanerName is a denormalized snapshot taken at assignment so
// past bookings stay displayable after the profile is gone.
type Booking struct {
	gorm.Model
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CleanerID     *uint         `json:"cleaner_id"`
	CleanerName   string        `json:"cleaner_name"`
	ServiceType   string        `json:"service_type"`
	ScheduledDate string        `json:"scheduled_date" gorm:"type:date"` // "YYYY-MM-DD"
	Hours         int           `json:"hours"`
	Address       string        `json:"address"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether a status change is legal. Completed and
// canceled are terminal; only completed bookings become review-eligible,
// so eligibility can trust the stored status.
func (s BookingStatus) CanTransition(newStatus BookingStatus) error {
	switch s {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", s)
	default:
		return fmt.Errorf("unknown status %s", s)
	}
	return nil
}

func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := b.Status.CanTransition(newStatus); err != nil {
		return err
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
