package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mutlubaslangic/api/internal/helpers"
	"github.com/mutlubaslangic/api/internal/models"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(userRepo models.UserRepo, jwtSecret string, jwtTTL time.Duration) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register creates an account and issues its first token. Email uniqueness is
// enforced by a pre-check, not transactionally.
func (us *UserService) Register(ctx context.Context, email, password, name, role string) (*models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email, password and name are required", models.ErrInvalidInput)
	}
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email format", models.ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleCouple
	}

	existing, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: email already registered", models.ErrConflict)
	}

	hashed, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashed,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := us.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := helpers.GenerateToken(us.jwtSecret, us.jwtTTL, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %v", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token carrying the same identity
// triple as registration.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", models.ErrInvalidInput)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !helpers.CheckPasswordHash(password, user.Password) {
		return nil, "", fmt.Errorf("%w: wrong password", models.ErrUnauthorized)
	}

	token, err := helpers.GenerateToken(us.jwtSecret, us.jwtTTL, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %v", err)
	}

	return user, token, nil
}

func (us *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	return us.userRepo.GetUserByID(ctx, id)
}
