package services

import (
	"context"
	"fmt"

	"github.com/mutlubaslangic/api/internal/models"
)

// In-memory repository doubles shared by the service tests.

type mockUserRepo struct {
	users     map[string]*models.User // keyed by id
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{}}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type mockReviewsRepo struct {
	reviews   []models.Review
	createErr error
}

func (m *mockReviewsRepo) CreateReview(ctx context.Context, review *models.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *mockReviewsRepo) ListReviewsByTarget(ctx context.Context, targetID string, targetType models.TargetType) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range m.reviews {
		if r.TargetID == targetID && r.TargetType == targetType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReviewsRepo) ListReviewsByTargetID(ctx context.Context, targetID string) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range m.reviews {
		if r.TargetID == targetID {
			out = append(out, r)
		}
	}
	return out, nil
}

type aggregateWrite struct {
	targetType  models.TargetType
	targetID    string
	rating      float64
	reviewCount int
}

type mockCatalogRepo struct {
	venues     map[string]*models.Venue
	suppliers  map[string]*models.Supplier
	aggregates []aggregateWrite
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		venues:    map[string]*models.Venue{},
		suppliers: map[string]*models.Supplier{},
	}
}

func (m *mockCatalogRepo) ListVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, error) {
	out := []models.Venue{}
	for _, v := range m.venues {
		out = append(out, *v)
	}
	return out, nil
}

func (m *mockCatalogRepo) GetVenueByID(ctx context.Context, id string) (*models.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (m *mockCatalogRepo) ListSuppliers(ctx context.Context, filter models.SupplierFilter) ([]models.Supplier, error) {
	out := []models.Supplier{}
	for _, s := range m.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockCatalogRepo) GetSupplierByID(ctx context.Context, id string) (*models.Supplier, error) {
	s, ok := m.suppliers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockCatalogRepo) UpdateTargetAggregates(ctx context.Context, targetType models.TargetType, targetID string, rating float64, reviewCount int) error {
	m.aggregates = append(m.aggregates, aggregateWrite{targetType, targetID, rating, reviewCount})
	switch targetType {
	case models.TargetVenue:
		if v, ok := m.venues[targetID]; ok {
			v.Rating = rating
			v.ReviewCount = reviewCount
		}
	case models.TargetSupplier:
		if s, ok := m.suppliers[targetID]; ok {
			s.Rating = rating
			s.ReviewCount = reviewCount
		}
	}
	return nil
}

type mockFavoritesRepo struct {
	favorites map[string]*models.Favorite // keyed by id
}

func newMockFavoritesRepo() *mockFavoritesRepo {
	return &mockFavoritesRepo{favorites: map[string]*models.Favorite{}}
}

func (m *mockFavoritesRepo) FindFavorite(ctx context.Context, userID, targetID string) (*models.Favorite, error) {
	for _, f := range m.favorites {
		if f.UserID == userID && f.TargetID == targetID {
			copied := *f
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockFavoritesRepo) InsertFavorite(ctx context.Context, favorite *models.Favorite) error {
	copied := *favorite
	m.favorites[favorite.ID] = &copied
	return nil
}

func (m *mockFavoritesRepo) DeleteFavorite(ctx context.Context, id string) error {
	delete(m.favorites, id)
	return nil
}

func (m *mockFavoritesRepo) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	out := []models.Favorite{}
	for _, f := range m.favorites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

type mockBookingsRepo struct {
	bookings []models.Booking
}

func (m *mockBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *mockBookingsRepo) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type mockBudgetRepo struct {
	plans   []models.BudgetPlan
	saveErr error
}

func (m *mockBudgetRepo) SaveBudgetPlan(ctx context.Context, plan *models.BudgetPlan) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.plans = append(m.plans, *plan)
	return nil
}

type mockCompleter struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (m *mockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	if m.err != nil {
		return "", fmt.Errorf("provider error: %w", m.err)
	}
	return m.response, nil
}
