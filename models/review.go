package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Review ties a customer's rating to a cleaner profile and, when written
// through the booking flow, to the reviewed booking. The composite unique
// index on (reviewer_id, booking_id) is the last line of defense against a
// concurrent double-submit creating duplicate reviews for one booking; the
// eligibility filter keeps already-reviewed bookings out of the UI before
// that.
type Review struct {
	gorm.Model
	ReviewerID       uint           `json:"reviewer_id" gorm:"not null;uniqueIndex:idx_reviewer_booking"`
	Reviewer         User           `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
	CleanerProfileID uint           `json:"cleaner_profile_id" gorm:"not null"`
	CleanerProfile   CleanerProfile `json:"cleaner_profile,omitempty" gorm:"foreignKey:CleanerProfileID"`
	BookingID        *uint          `json:"booking_id" gorm:"uniqueIndex:idx_reviewer_booking"`
	Rating           int            `json:"rating" gorm:"not null"`
	Comment          *string        `json:"comment"`
}

// Validate rejects out-of-range ratings before any write. The UI constrains
// entry to 1..5 stars but the workflow still checks.
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be an integer between 1 and 5, got %d", r.Rating)
	}
	return nil
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	return r.Validate()
}

// HasExistingReview checks whether the reviewer already reviewed this
// booking.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	if r.BookingID == nil {
		return false, nil
	}
	var count int64
	err := tx.Model(&Review{}).
		Where("reviewer_id = ? AND booking_id = ? AND deleted_at IS NULL", r.ReviewerID, *r.BookingID).
		Count(&count).Error

	return count > 0, err
}

// TrimComment normalizes a free-text comment to trimmed-or-null.
func TrimComment(comment string) *string {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
