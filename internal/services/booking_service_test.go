package services

import (
	"context"
	"testing"

	"github.com/mutlubaslangic/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingStartsPending(t *testing.T) {
	repo := &mockBookingsRepo{}
	bs := NewBookingService(repo)

	booking, err := bs.Create(context.Background(), "u1", "v1", models.TargetVenue, "2026-09-12", "Kır düğünü")
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "2026-09-12", booking.Date)
	assert.Equal(t, "Kır düğünü", booking.Notes)
	assert.False(t, booking.CreatedAt.IsZero())

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, booking.ID, repo.bookings[0].ID)
}

func TestCreateBookingAllowsOverlappingDates(t *testing.T) {
	repo := &mockBookingsRepo{}
	bs := NewBookingService(repo)
	ctx := context.Background()

	first, err := bs.Create(ctx, "u1", "v1", models.TargetVenue, "2026-09-12", "")
	require.NoError(t, err)
	second, err := bs.Create(ctx, "u2", "v1", models.TargetVenue, "2026-09-12", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.bookings, 2)
}

func TestCreateBookingValidation(t *testing.T) {
	bs := NewBookingService(&mockBookingsRepo{})
	ctx := context.Background()

	cases := []struct {
		name       string
		userID     string
		targetID   string
		targetType models.TargetType
		date       string
	}{
		{"missing user", "", "v1", models.TargetVenue, "2026-09-12"},
		{"missing target", "u1", "", models.TargetVenue, "2026-09-12"},
		{"missing date", "u1", "v1", models.TargetVenue, ""},
		{"unknown target type", "u1", "v1", models.TargetType("dj"), "2026-09-12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bs.Create(ctx, tc.userID, tc.targetID, tc.targetType, tc.date, "")
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestListBookingsScopedToUser(t *testing.T) {
	repo := &mockBookingsRepo{}
	bs := NewBookingService(repo)
	ctx := context.Background()

	_, err := bs.Create(ctx, "u1", "v1", models.TargetVenue, "2026-09-12", "")
	require.NoError(t, err)
	_, err = bs.Create(ctx, "u1", "s1", models.TargetSupplier, "2026-09-13", "")
	require.NoError(t, err)
	_, err = bs.Create(ctx, "u2", "v1", models.TargetVenue, "2026-09-12", "")
	require.NoError(t, err)

	bookings, err := bs.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, "u1", b.UserID)
	}
}
