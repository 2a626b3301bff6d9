package utils

import (
	"testing"

	"gorm.io/gorm"

	"github.com/cleaningnetwork/marketplace-api/models"
)

func uintPtr(v uint) *uint { return &v }

func booking(id uint, cleanerID *uint, name string, status models.BookingStatus) models.Booking {
	return models.Booking{
		Model:       gorm.Model{ID: id},
		CleanerID:   cleanerID,
		CleanerName: name,
		Status:      status,
	}
}

func TestEligibleBookings(t *testing.T) {
	cleaner := uintPtr(7)
	profiles := []models.CleanerProfile{
		{Model: gorm.Model{ID: 3}, UserID: 7, BusinessName: "Sparkle Co"},
	}

	t.Run("reviewed booking is excluded", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, cleaner, "", models.StatusCompleted),
			booking(2, cleaner, "", models.StatusCompleted),
		}
		reviews := []models.Review{
			{ReviewerID: 10, BookingID: uintPtr(1), Rating: 5},
		}

		got := EligibleBookings(bookings, reviews, profiles)
		if len(got) != 1 {
			t.Fatalf("expected 1 eligible booking, got %d", len(got))
		}
		if got[0].Booking.ID != 2 {
			t.Errorf("expected booking 2, got %d", got[0].Booking.ID)
		}
		if got[0].CleanerProfile == nil || got[0].CleanerProfile.ID != 3 {
			t.Errorf("expected profile 3 to be resolved, got %+v", got[0].CleanerProfile)
		}
		if got[0].CleanerName != "Sparkle Co" {
			t.Errorf("expected profile business name, got %q", got[0].CleanerName)
		}
	})

	t.Run("non-completed bookings are excluded", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, cleaner, "", models.StatusPending),
			booking(2, cleaner, "", models.StatusConfirmed),
			booking(3, cleaner, "", models.StatusCanceled),
		}

		got := EligibleBookings(bookings, nil, profiles)
		if len(got) != 0 {
			t.Fatalf("expected no eligible bookings, got %d", len(got))
		}
	})

	t.Run("missing profile keeps booking with snapshot name", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, uintPtr(99), "Gone Cleaning", models.StatusCompleted),
		}

		got := EligibleBookings(bookings, nil, profiles)
		if len(got) != 1 {
			t.Fatalf("expected 1 eligible booking, got %d", len(got))
		}
		if got[0].CleanerProfile != nil {
			t.Errorf("expected nil profile, got %+v", got[0].CleanerProfile)
		}
		if got[0].CleanerName != "Gone Cleaning" {
			t.Errorf("expected snapshot name, got %q", got[0].CleanerName)
		}
	})

	t.Run("no snapshot falls back to generic name", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, nil, "", models.StatusCompleted),
		}

		got := EligibleBookings(bookings, nil, nil)
		if len(got) != 1 {
			t.Fatalf("expected 1 eligible booking, got %d", len(got))
		}
		if got[0].CleanerName != "Cleaner" {
			t.Errorf("expected fallback name, got %q", got[0].CleanerName)
		}
	})

	t.Run("empty inputs yield empty non-nil result", func(t *testing.T) {
		got := EligibleBookings(nil, nil, nil)
		if got == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %d", len(got))
		}
	})
}

func TestFilterUnreviewed(t *testing.T) {
	bookings := []models.Booking{
		booking(1, nil, "", models.StatusCompleted),
		booking(2, nil, "", models.StatusCompleted),
		booking(3, nil, "", models.StatusPending),
	}
	reviews := []models.Review{
		{BookingID: uintPtr(2)},
		{BookingID: nil}, // legacy review without booking link
	}

	got := FilterUnreviewed(bookings, reviews)
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("expected booking 1, got %d", got[0].ID)
	}
}

func TestCleanerIDs(t *testing.T) {
	bookings := []models.Booking{
		booking(1, uintPtr(5), "", models.StatusCompleted),
		booking(2, nil, "", models.StatusCompleted),
		booking(3, uintPtr(5), "", models.StatusCompleted),
		booking(4, uintPtr(9), "", models.StatusCompleted),
	}

	got := CleanerIDs(bookings)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct ids, got %v", got)
	}
	if got[0] != 5 || got[1] != 9 {
		t.Errorf("expected [5 9] preserving first-seen order, got %v", got)
	}

	if got := CleanerIDs(nil); len(got) != 0 {
		t.Errorf("expected empty ids for no bookings, got %v", got)
	}
}
