package services

import (
	"context"
	"fmt"

	"github.com/mutlubaslangic/api/internal/models"
)

// CatalogService serves the public read surface: venue and supplier listings
// with conjunctive filters, plus single-entity lookups joined with reviews.
type CatalogService struct {
	catalogRepo models.CatalogRepo
	reviewsRepo models.ReviewsRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo, reviewsRepo models.ReviewsRepo) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		reviewsRepo: reviewsRepo,
	}
}

func (cs *CatalogService) ListVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, error) {
	return cs.catalogRepo.ListVenues(ctx, filter)
}

func (cs *CatalogService) GetVenue(ctx context.Context, id string) (*models.Venue, []models.Review, error) {
	if id == "" {
		return nil, nil, fmt.Errorf("%w: venue id is required", models.ErrInvalidInput)
	}

	venue, err := cs.catalogRepo.GetVenueByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := cs.reviewsRepo.ListReviewsByTarget(ctx, id, models.TargetVenue)
	if err != nil {
		return nil, nil, err
	}

	return venue, reviews, nil
}

func (cs *CatalogService) ListSuppliers(ctx context.Context, filter models.SupplierFilter) ([]models.Supplier, error) {
	return cs.catalogRepo.ListSuppliers(ctx, filter)
}

func (cs *CatalogService) GetSupplier(ctx context.Context, id string) (*models.Supplier, []models.Review, error) {
	if id == "" {
		return nil, nil, fmt.Errorf("%w: supplier id is required", models.ErrInvalidInput)
	}

	supplier, err := cs.catalogRepo.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := cs.reviewsRepo.ListReviewsByTarget(ctx, id, models.TargetSupplier)
	if err != nil {
		return nil, nil, err
	}

	return supplier, reviews, nil
}

// ReviewsForTarget matches on the target id alone; the public review feed does
// not discriminate on target type.
func (cs *CatalogService) ReviewsForTarget(ctx context.Context, targetID string) ([]models.Review, error) {
	if targetID == "" {
		return nil, fmt.Errorf("%w: target id is required", models.ErrInvalidInput)
	}
	return cs.reviewsRepo.ListReviewsByTargetID(ctx, targetID)
}
