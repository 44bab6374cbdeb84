package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mutlubaslangic/api/internal/models"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
	}
}

// Create inserts a new pending booking. Overlapping dates for the same target
// are allowed; there is no conflict detection.
func (bs *BookingService) Create(ctx context.Context, userID, targetID string, targetType models.TargetType, date, notes string) (*models.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	if targetID == "" || targetType == "" || date == "" {
		return nil, fmt.Errorf("%w: targetId, targetType and date are required", models.ErrInvalidInput)
	}
	if !targetType.Valid() {
		return nil, fmt.Errorf("%w: target type must be venue or supplier", models.ErrInvalidInput)
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
		Date:       date,
		Notes:      notes,
		Status:     models.BookingStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := bs.bookingsRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (bs *BookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	return bs.bookingsRepo.ListBookingsByUser(ctx, userID)
}
