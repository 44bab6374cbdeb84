package routes

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/container"
	"github.com/mutlubaslangic/api/internal/handlers"
	"github.com/mutlubaslangic/api/internal/middleware"
)

// writeMethods covers the POST-family surface: PUT, DELETE and PATCH dispatch
// identically to the POST handlers.
var writeMethods = []string{
	http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch,
}

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(corsConfig(c.Config.CORSOrigins))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	auth := middleware.Auth(c.Config.JWTSecret)

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Mutlu Başlangıç API - Wedding Platform"})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "service": "mutlu-baslangic-api"})
	})

	// Public catalog reads
	r.GET("/venues", handlers.ListVenues(c.CatalogService))
	r.GET("/venues/:id", handlers.GetVenue(c.CatalogService))
	r.GET("/suppliers", handlers.ListSuppliers(c.CatalogService))
	r.GET("/suppliers/:id", handlers.GetSupplier(c.CatalogService))
	r.GET("/reviews/:targetId", handlers.ListReviews(c.CatalogService))

	// Account operations
	r.Match(writeMethods, "/auth/register", handlers.Register(c.UserService))
	r.Match(writeMethods, "/auth/login", handlers.Login(c.UserService))
	r.GET("/auth/me", auth, handlers.Me(c.UserService))

	// Authenticated interactions
	r.GET("/user/favorites", auth, handlers.ListFavorites(c.FavoriteService))
	r.Match(writeMethods, "/user/favorites", auth, handlers.ToggleFavorite(c.FavoriteService))
	r.GET("/user/bookings", auth, handlers.ListBookings(c.BookingService))
	r.Match(writeMethods, "/reviews", auth, handlers.CreateReview(c.ReviewService))
	r.Match(writeMethods, "/bookings", auth, handlers.CreateBooking(c.BookingService))

	// AI operations
	r.Match(writeMethods, "/ai/budget-planner", handlers.BudgetPlanner(c.PlannerService))
	r.Match(writeMethods, "/ai/budget-question", handlers.BudgetQuestion(c.PlannerService))

	// Unmatched GETs fall through to a welcome payload; the write surface 404s.
	r.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet {
			ctx.JSON(http.StatusOK, gin.H{"message": "Mutlu Başlangıç API"})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Endpoint bulunamadı"})
	})

	return r
}

func corsConfig(origins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
