package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type createMealPlanRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    string `json:"calories"`
	DietPlan    string `json:"diet_plan"`
}

func (s *Server) handleListMealPlans(c *gin.Context) {
	plans := s.stores.MealPlans.Visible(c.Query("q"), c.QueryArray("filter"))
	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": len(plans)})
}

func (s *Server) handleGetMealPlan(c *gin.Context) {
	plan, err := s.stores.MealPlans.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleCreateMealPlan(c *gin.Context) {
	var req createMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.MealPlan{
		Name:        req.Name,
		Description: req.Description,
		DietPlan:    req.DietPlan,
		Foods:       []models.MealFood{},
	}
	if req.Calories != "" {
		fields := make(map[string]string)
		plan.Calories = parseNumber(req.Calories, "calories", "Calories", fields)
		if len(fields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
	}

	created, err := s.stores.MealPlans.Add(plan)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("meal_plans", "added", "info", "Meal plan "+created.Name+" created")
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteMealPlan(c *gin.Context) {
	id := c.Param("id")
	if s.stores.MealPlans.Delete(id) {
		s.recordMutation("meal_plans", "deleted", "info", "Meal plan "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted"})
}
