package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/middleware"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func ListFavorites(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		favorites, err := fs.ListByUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"favorites": favorites})
	}
}

// ToggleFavorite flips the favorite state and reports the resulting one.
func ToggleFavorite(fs *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		var req struct {
			TargetID   string            `json:"targetId"`
			TargetType models.TargetType `json:"targetType"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
			return
		}

		favorited, err := fs.Toggle(c.Request.Context(), claims.UserID, req.TargetID, req.TargetType)
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
				return
			}
			c.Error(err)
			return
		}

		message := "Favorilerden çıkarıldı"
		if favorited {
			message = "Favorilere eklendi"
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "favorited": favorited})
	}
}
