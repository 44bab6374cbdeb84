package container

import (
	"log/slog"

	"github.com/mutlubaslangic/api/internal/config"
	"github.com/mutlubaslangic/api/internal/llm"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Repo          *models.MongodbRepo

	UserService     *services.UserService
	CatalogService  *services.CatalogService
	ReviewService   *services.ReviewService
	FavoriteService *services.FavoriteService
	BookingService  *services.BookingService
	PlannerService  *services.PlannerService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) (*Container, error) {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.DBName)

	completer, err := llm.NewClient(llm.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		Repo:            repo,
		UserService:     services.NewUserService(repo, cfg.JWTSecret, cfg.JWTTTL),
		CatalogService:  services.NewCatalogService(repo, repo),
		ReviewService:   services.NewReviewService(repo, repo),
		FavoriteService: services.NewFavoriteService(repo),
		BookingService:  services.NewBookingService(repo),
		PlannerService:  services.NewPlannerService(completer, repo),
	}, nil
}
