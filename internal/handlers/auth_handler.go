package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/middleware"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
			Role     string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tüm alanları doldurun"})
			return
		}

		user, token, err := u.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrConflict):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Bu email zaten kullanılıyor"})
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Tüm alanları doldurun"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email ve şifre gerekli"})
			return
		}

		user, token, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email ve şifre gerekli"})
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Kullanıcı bulunamadı"})
			case errors.Is(err, models.ErrUnauthorized):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Hatalı şifre"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// Me returns the profile behind the bearer token. The token may outlive the
// account, hence the extra not-found case.
func Me(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.MsgUnauthorized})
			return
		}

		user, err := u.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Kullanıcı bulunamadı"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
