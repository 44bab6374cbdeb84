package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutlubaslangic/api/internal/models"
	"github.com/mutlubaslangic/api/internal/services"
)

func BudgetPlanner(ps *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Location    string `json:"location"`
			GuestCount  int    `json:"guestCount"`
			Budget      int    `json:"budget"`
			Preferences string `json:"preferences"`
			SessionID   string `json:"sessionId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Şehir, misafir sayısı ve bütçe gerekli"})
			return
		}

		plan, sessionID, err := ps.GeneratePlan(c.Request.Context(), services.BudgetPlanInput{
			Location:    req.Location,
			GuestCount:  req.GuestCount,
			Budget:      req.Budget,
			Preferences: req.Preferences,
			SessionID:   req.SessionID,
		})
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Şehir, misafir sayısı ve bütçe gerekli"})
			case errors.Is(err, models.ErrUpstream):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": plan, "sessionId": sessionID})
	}
}

func BudgetQuestion(ps *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Question  string `json:"question"`
			SessionID string `json:"sessionId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Soru ve session ID gerekli"})
			return
		}

		answer, err := ps.AnswerQuestion(c.Request.Context(), req.Question, req.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Soru ve session ID gerekli"})
			case errors.Is(err, models.ErrUpstream):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": answer, "sessionId": req.SessionID})
	}
}
