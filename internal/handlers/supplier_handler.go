package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func ListSuppliers(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.SupplierFilter{
			City:       c.Query("city"),
			Category:   c.Query("category"),
			WomenOwned: c.Query("womenOwned") == "true",
			MinPrice:   priceBound(c, "minPrice"),
			MaxPrice:   priceBound(c, "maxPrice"),
		}

		suppliers, err := cs.ListSuppliers(c.Request.Context(), filter)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
	}
}

func GetSupplier(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplier, reviews, err := cs.GetSupplier(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Tedarikçi bulunamadı"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"supplier": supplier, "reviews": reviews})
	}
}
