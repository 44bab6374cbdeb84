package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mutlubaslangic/api/internal/models"
)

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	catalogRepo models.CatalogRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo, catalogRepo models.CatalogRepo) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		catalogRepo: catalogRepo,
	}
}

// AddReview persists the review, then recomputes the target's aggregate rating
// and review count from all reviews on record. The two steps are not
// transactional; a failure in between leaves the aggregate stale until the
// next review.
func (rs *ReviewService) AddReview(ctx context.Context, userID string, targetID string, targetType models.TargetType, rating int, comment string) (*models.Review, error) {
	if targetID == "" || targetType == "" || rating == 0 {
		return nil, fmt.Errorf("%w: targetId, targetType and rating are required", models.ErrInvalidInput)
	}
	if !targetType.Valid() {
		return nil, fmt.Errorf("%w: target type must be venue or supplier", models.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrInvalidInput)
	}

	review := &models.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}

	if err := rs.reviewsRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	all, err := rs.reviewsRepo.ListReviewsByTarget(ctx, targetID, targetType)
	if err != nil {
		return nil, err
	}

	avg := AverageRating(all)
	if err := rs.catalogRepo.UpdateTargetAggregates(ctx, targetType, targetID, avg, len(all)); err != nil {
		return nil, err
	}

	return review, nil
}

// AverageRating is the arithmetic mean of all ratings, rounded to one decimal.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
