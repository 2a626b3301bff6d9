package utils

import (
	"math"

	"github.com/cleaningnetwork/marketplace-api/models"
)

type RatingBucket struct {
	Rating  int     `json:"rating"`
	Count   int     `json:"count"`
	Percent float64 `json:"pct"`
}

type ReviewStats struct {
	TotalReviews  int            `json:"total_reviews"`
	AverageRating float64        `json:"average_rating"`
	Buckets       []RatingBucket `json:"rating_counts"`
}

// ComputeReviewStats derives summary statistics from a review set: total
// count, mean rating rounded to one decimal, and per-star counts with
// percentages. Pure derivation, recomputed from the latest fetched set on
// every call; nothing is maintained incrementally.
//
// The empty set yields a defined 0 mean (never NaN) and all-zero buckets.
// Bucket counts always sum to the total, and percentages sum to 100 when
// the set is non-empty.
func ComputeReviewStats(reviews []models.Review) ReviewStats {
	stats := ReviewStats{
		TotalReviews: len(reviews),
		Buckets:      make([]RatingBucket, 0, 5),
	}

	counts := make(map[int]int, 5)
	sum := 0
	for _, r := range reviews {
		counts[r.Rating]++
		sum += r.Rating
	}

	if stats.TotalReviews > 0 {
		avg := float64(sum) / float64(stats.TotalReviews)
		stats.AverageRating = math.Round(avg*10) / 10
	}

	for star := 5; star >= 1; star-- {
		bucket := RatingBucket{Rating: star, Count: counts[star]}
		if stats.TotalReviews > 0 {
			bucket.Percent = float64(counts[star]) / float64(stats.TotalReviews) * 100
		}
		stats.Buckets = append(stats.Buckets, bucket)
	}
	return stats
}
