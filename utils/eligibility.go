package utils

import (
	"github.com/cleaningnetwork/marketplace-api/models"
)

// EligibleBooking pairs a reviewable booking with the cleaner profile it
// resolves to. CleanerProfile is nil when the profile no longer exists;
// the booking stays reviewable and CleanerName falls back to the
// denormalized snapshot.
type EligibleBooking struct {
	Booking        models.Booking         `json:"booking"`
	CleanerProfile *models.CleanerProfile `json:"cleaner_profile"`
	CleanerName    string                 `json:"cleaner_name"`
}

// EligibleBookings computes which of a reviewer's bookings may still be
// reviewed: completed bookings with no existing review by that reviewer,
// joined to their cleaner profiles by the cleaner's user id. Pure
// fetch-then-filter-then-join over three already-fetched record sets;
// callers do the I/O.
func EligibleBookings(bookings []models.Booking, reviews []models.Review, profiles []models.CleanerProfile) []EligibleBooking {
	reviewed := make(map[uint]bool, len(reviews))
	for _, r := range reviews {
		if r.BookingID != nil {
			reviewed[*r.BookingID] = true
		}
	}

	profileByUser := make(map[uint]*models.CleanerProfile, len(profiles))
	for i := range profiles {
		profileByUser[profiles[i].UserID] = &profiles[i]
	}

	eligible := make([]EligibleBooking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != models.StatusCompleted {
			continue
		}
		if reviewed[b.ID] {
			continue
		}

		var profile *models.CleanerProfile
		if b.CleanerID != nil {
			profile = profileByUser[*b.CleanerID]
		}

		name := b.CleanerName
		if profile != nil {
			name = profile.BusinessName
		}
		if name == "" {
			name = "Cleaner"
		}

		eligible = append(eligible, EligibleBooking{
			Booking:        b,
			CleanerProfile: profile,
			CleanerName:    name,
		})
	}
	return eligible
}

// FilterUnreviewed keeps the completed bookings that have no review by
// the reviewer who authored the given reviews.
func FilterUnreviewed(bookings []models.Booking, reviews []models.Review) []models.Booking {
	reviewed := make(map[uint]bool, len(reviews))
	for _, r := range reviews {
		if r.BookingID != nil {
			reviewed[*r.BookingID] = true
		}
	}

	remaining := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.StatusCompleted && !reviewed[b.ID] {
			remaining = append(remaining, b)
		}
	}
	return remaining
}

// CleanerIDs collects the distinct non-nil cleaner references of the given
// bookings, preserving first-seen order. An empty result means the profile
// lookup can be skipped entirely: an empty IN-list matches nothing, not
// everything.
func CleanerIDs(bookings []models.Booking) []uint {
	seen := make(map[uint]bool, len(bookings))
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		if b.CleanerID == nil || seen[*b.CleanerID] {
			continue
		}
		seen[*b.CleanerID] = true
		ids = append(ids, *b.CleanerID)
	}
	return ids
}
