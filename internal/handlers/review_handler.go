package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/middleware"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func ListReviews(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := cs.ReviewsForTarget(c.Request.Context(), c.Param("targetId"))
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

func CreateReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		var req struct {
			TargetID   string            `json:"targetId"`
			TargetType models.TargetType `json:"targetType"`
			Rating     int               `json:"rating"`
			Comment    string            `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
			return
		}

		review, err := rs.AddReview(c.Request.Context(), claims.UserID, req.TargetID, req.TargetType, req.Rating, req.Comment)
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"review": review})
	}
}
