package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/middleware"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		bookings, err := bs.ListByUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		var req struct {
			TargetID   string            `json:"targetId"`
			TargetType models.TargetType `json:"targetType"`
			Date       string            `json:"date"`
			Notes      string            `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
			return
		}

		booking, err := bs.Create(c.Request.Context(), claims.UserID, req.TargetID, req.TargetType, req.Date, req.Notes)
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Gerekli alanları doldurun"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"booking": booking})
	}
}
