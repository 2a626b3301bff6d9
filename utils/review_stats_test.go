package utils

import (
	"testing"

	"github.com/cleaningnetwork/marketplace-api/models"
)

func reviewsWithRatings(ratings ...int) []models.Review {
	reviews := make([]models.Review, 0, len(ratings))
	for _, r := range ratings {
		reviews = append(reviews, models.Review{Rating: r})
	}
	return reviews
}

func TestComputeReviewStats(t *testing.T) {
	stats := ComputeReviewStats(reviewsWithRatings(5, 5, 4, 3, 5))

	if stats.TotalReviews != 5 {
		t.Errorf("expected 5 total reviews, got %d", stats.TotalReviews)
	}
	if stats.AverageRating != 4.4 {
		t.Errorf("expected mean 4.4, got %v", stats.AverageRating)
	}

	if len(stats.Buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(stats.Buckets))
	}

	wantCounts := map[int]int{5: 3, 4: 1, 3: 1, 2: 0, 1: 0}
	wantPercents := map[int]float64{5: 60, 4: 20, 3: 20, 2: 0, 1: 0}
	for i, bucket := range stats.Buckets {
		if want := 5 - i; bucket.Rating != want {
			t.Errorf("bucket %d: expected rating %d, got %d", i, want, bucket.Rating)
		}
		if bucket.Count != wantCounts[bucket.Rating] {
			t.Errorf("rating %d: expected count %d, got %d", bucket.Rating, wantCounts[bucket.Rating], bucket.Count)
		}
		if bucket.Percent != wantPercents[bucket.Rating] {
			t.Errorf("rating %d: expected %v%%, got %v%%", bucket.Rating, wantPercents[bucket.Rating], bucket.Percent)
		}
	}
}

func TestComputeReviewStatsEmpty(t *testing.T) {
	stats := ComputeReviewStats(nil)

	if stats.TotalReviews != 0 {
		t.Errorf("expected 0 total reviews, got %d", stats.TotalReviews)
	}
	// The mean of nothing is a defined 0, never NaN.
	if stats.AverageRating != 0 {
		t.Errorf("expected 0 mean, got %v", stats.AverageRating)
	}
	if len(stats.Buckets) != 5 {
		t.Fatalf("expected 5 buckets even when empty, got %d", len(stats.Buckets))
	}
	for _, bucket := range stats.Buckets {
		if bucket.Count != 0 || bucket.Percent != 0 {
			t.Errorf("rating %d: expected zero bucket, got count=%d pct=%v", bucket.Rating, bucket.Count, bucket.Percent)
		}
	}
}

func TestComputeReviewStatsCountsSumToTotal(t *testing.T) {
	cases := [][]int{
		{1},
		{1, 2, 3, 4, 5},
		{5, 5, 5, 5},
		{2, 2, 4},
	}

	for _, ratings := range cases {
		stats := ComputeReviewStats(reviewsWithRatings(ratings...))
		sum := 0
		for _, bucket := range stats.Buckets {
			sum += bucket.Count
		}
		if sum != stats.TotalReviews {
			t.Errorf("ratings %v: bucket counts sum to %d, total is %d", ratings, sum, stats.TotalReviews)
		}
	}
}
