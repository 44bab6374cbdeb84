package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mutlubaslangic/api/internal/models"
)

type FavoriteService struct {
	favoritesRepo models.FavoritesRepo
}

func NewFavoriteService(favoritesRepo models.FavoritesRepo) *FavoriteService {
	return &FavoriteService{
		favoritesRepo: favoritesRepo,
	}
}

// Toggle flips the favorite state for a (user, target) pair: present deletes,
// absent inserts. The returned boolean is the state after the call.
func (fs *FavoriteService) Toggle(ctx context.Context, userID, targetID string, targetType models.TargetType) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	if strings.TrimSpace(targetID) == "" {
		return false, fmt.Errorf("%w: target id is required", models.ErrInvalidInput)
	}
	if !targetType.Valid() {
		return false, fmt.Errorf("%w: target type must be venue or supplier", models.ErrInvalidInput)
	}

	existing, err := fs.favoritesRepo.FindFavorite(ctx, userID, targetID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return false, err
	}

	if existing != nil {
		if err := fs.favoritesRepo.DeleteFavorite(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	favorite := &models.Favorite{
		ID:         uuid.NewString(),
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
		CreatedAt:  time.Now(),
	}
	if err := fs.favoritesRepo.InsertFavorite(ctx, favorite); err != nil {
		return false, err
	}
	return true, nil
}

func (fs *FavoriteService) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	return fs.favoritesRepo.ListFavoritesByUser(ctx, userID)
}
