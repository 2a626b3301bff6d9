package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
	"github.com/cleaningnetwork/marketplace-api/redis"
	"github.com/cleaningnetwork/marketplace-api/utils"
)

// ReviewResponse decorates a review with display names resolved by
// batched lookup, the way the reviews page shows them.
type ReviewResponse struct {
	models.Review
	ReviewerName string `json:"reviewer_name"`
	CleanerName  string `json:"cleaner_name"`
}

// fetchEligible loads the three record sets the eligibility computation
// needs and joins them. The profile lookup waits on the booking and review
// fetches because its id list comes from them; an empty id list
// short-circuits to no query at all. Any fetch error aborts the whole
// computation: partial results are never returned.
func fetchEligible(userID uint) ([]utils.EligibleBooking, error) {
	var bookings []models.Booking
	if err := db.DB.
		Where("customer_id = ? AND status = ?", userID, models.StatusCompleted).
		Order("scheduled_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := db.DB.Where("reviewer_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	var profiles []models.CleanerProfile
	remaining := utils.FilterUnreviewed(bookings, reviews)
	if ids := utils.CleanerIDs(remaining); len(ids) > 0 {
		if err := db.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}

	return utils.EligibleBookings(bookings, reviews, profiles), nil
}

// GetEligibleBookings returns the caller's completed bookings that have no
// review yet, each resolved to its cleaner profile.
func GetEligibleBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	eligible, err := fetchEligible(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to load eligible bookings", err))
	}

	return c.JSON(fiber.Map{
		"eligible_bookings": eligible,
		"count":             len(eligible),
	})
}

// CreateReview validates and persists a new review for one of the
// caller's eligible bookings.
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type CreateReviewInput struct {
		BookingID uint   `json:"booking_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}

	input := new(CreateReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if input.BookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing selected booking",
		})
	}

	// The UI constrains star entry to 1..5; reject defensively anyway
	// before any write.
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be an integer between 1 and 5",
		})
	}

	// Recompute the eligible set inside the request rather than trusting
	// the client's copy.
	eligible, err := fetchEligible(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to verify review eligibility", err))
	}

	var selected *utils.EligibleBooking
	for i := range eligible {
		if eligible[i].Booking.ID == input.BookingID {
			selected = &eligible[i]
			break
		}
	}
	if selected == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking is not eligible for review",
		})
	}

	// The review must target the profile owned by the booking's cleaner.
	// An unresolved profile aborts; a review without its cleaner profile
	// reference would be malformed.
	if selected.CleanerProfile == nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Cleaner profile not found",
		})
	}

	bookingID := input.BookingID
	review := models.Review{
		ReviewerID:       userID,
		CleanerProfileID: selected.CleanerProfile.ID,
		BookingID:        &bookingID,
		Rating:           input.Rating,
		Comment:          models.TrimComment(input.Comment),
	}

	if err := db.DB.Create(&review).Error; err != nil {
		// Surface the backend reason; the unique index on
		// (reviewer_id, booking_id) lands here on a double-submit race.
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to create review", err))
	}

	// Cached review lists and stats are stale now. Drop them wholesale so
	// the next read recomputes from source.
	redis.InvalidatePrefix(redis.ReviewsPrefix)

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetReviews retrieves reviews, optionally filtered by star rating, with
// reviewer and cleaner names resolved.
func GetReviews(c *fiber.Ctx) error {
	ratingFilter := c.Query("rating")

	cacheKey := redis.ReviewsPrefix + "list:all"
	if ratingFilter != "" {
		cacheKey = redis.ReviewsPrefix + "list:" + ratingFilter
	}
	var cached []ReviewResponse
	if redis.CacheGet(cacheKey, &cached) {
		return c.JSON(fiber.Map{"reviews": cached, "total": len(cached)})
	}

	query := db.DB.Model(&models.Review{}).Order("created_at DESC")
	if ratingFilter != "" {
		rating, err := strconv.Atoi(ratingFilter)
		if err != nil || rating < 1 || rating > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid rating filter",
			})
		}
		query = query.Where("rating = ?", rating)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	resolved, err := resolveReviewNames(reviews)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	redis.CacheSet(cacheKey, resolved)

	return c.JSON(fiber.Map{
		"reviews": resolved,
		"total":   len(resolved),
	})
}

// GetReviewStats returns count, mean rating and the per-star histogram
// over all reviews.
func GetReviewStats(c *fiber.Ctx) error {
	cacheKey := redis.ReviewsPrefix + "stats"
	var cached utils.ReviewStats
	if redis.CacheGet(cacheKey, &cached) {
		return c.JSON(cached)
	}

	var reviews []models.Review
	if err := db.DB.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	stats := utils.ComputeReviewStats(reviews)
	redis.CacheSet(cacheKey, stats)

	return c.JSON(stats)
}

// GetCleanerReviews retrieves all reviews for one cleaner profile.
func GetCleanerReviews(c *fiber.Ctx) error {
	profileID := c.Params("id")

	var reviews []models.Review
	if err := db.DB.
		Where("cleaner_profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	resolved, err := resolveReviewNames(reviews)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	return c.JSON(fiber.Map{
		"reviews": resolved,
		"total":   len(resolved),
	})
}

// GetCleanerReviewStats returns the review aggregate for one cleaner
// profile.
func GetCleanerReviewStats(c *fiber.Ctx) error {
	profileID := c.Params("id")

	cacheKey := fmt.Sprintf("%scleaner:%s:stats", redis.ReviewsPrefix, profileID)
	var cached utils.ReviewStats
	if redis.CacheGet(cacheKey, &cached) {
		return c.JSON(cached)
	}

	var reviews []models.Review
	if err := db.DB.Where("cleaner_profile_id = ?", profileID).Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorResponse("Failed to fetch reviews", err))
	}

	stats := utils.ComputeReviewStats(reviews)
	redis.CacheSet(cacheKey, stats)

	return c.JSON(stats)
}

// resolveReviewNames joins reviewer full names and cleaner business names
// onto reviews with two batched lookups.
func resolveReviewNames(reviews []models.Review) ([]ReviewResponse, error) {
	reviewerIDs := make([]uint, 0, len(reviews))
	profileIDs := make([]uint, 0, len(reviews))
	seenReviewer := make(map[uint]bool)
	seenProfile := make(map[uint]bool)
	for _, r := range reviews {
		if !seenReviewer[r.ReviewerID] {
			seenReviewer[r.ReviewerID] = true
			reviewerIDs = append(reviewerIDs, r.ReviewerID)
		}
		if !seenProfile[r.CleanerProfileID] {
			seenProfile[r.CleanerProfileID] = true
			profileIDs = append(profileIDs, r.CleanerProfileID)
		}
	}

	reviewerNames := make(map[uint]string, len(reviewerIDs))
	if len(reviewerIDs) > 0 {
		var users []models.User
		if err := db.DB.Select("id, full_name").Where("id IN ?", reviewerIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			reviewerNames[u.ID] = u.FullName
		}
	}

	cleanerNames := make(map[uint]string, len(profileIDs))
	if len(profileIDs) > 0 {
		var profiles []models.CleanerProfile
		if err := db.DB.Select("id, business_name").Where("id IN ?", profileIDs).Find(&profiles).Error; err != nil {
			return nil, err
		}
		for _, p := range profiles {
			cleanerNames[p.ID] = p.BusinessName
		}
	}

	resolved := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resolved = append(resolved, ReviewResponse{
			Review:       r,
			ReviewerName: reviewerNames[r.ReviewerID],
			CleanerName:  cleanerNames[r.CleanerProfileID],
		})
	}
	return resolved, nil
}
