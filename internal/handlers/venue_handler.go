package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

// priceBound parses an optional integer query parameter. Absent or unparsable
// values mean no constraint.
func priceBound(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func ListVenues(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.VenueFilter{
			City:      c.Query("city"),
			District:  c.Query("district"),
			VenueType: c.Query("type"),
			MinPrice:  priceBound(c, "minPrice"),
			MaxPrice:  priceBound(c, "maxPrice"),
		}

		venues, err := cs.ListVenues(c.Request.Context(), filter)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"venues": venues})
	}
}

func GetVenue(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, reviews, err := cs.GetVenue(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Mekan bulunamadı"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"venue": venue, "reviews": reviews})
	}
}
