package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type createDietPlanRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	HealthGoals  []string `json:"health_goals"`
	Restrictions []string `json:"restrictions"`
}

func (s *Server) handleListDietPlans(c *gin.Context) {
	plans := s.stores.DietPlans.Visible(c.Query("q"), c.QueryArray("filter"))
	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": len(plans)})
}

func (s *Server) handleCreateDietPlan(c *gin.Context) {
	var req createDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.stores.DietPlans.Add(models.DietPlan{
		Name:         req.Name,
		Description:  req.Description,
		HealthGoals:  req.HealthGoals,
		Restrictions: req.Restrictions,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("diet_plans", "added", "info", "Diet plan "+created.Name+" created")
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteDietPlan(c *gin.Context) {
	id := c.Param("id")
	if s.stores.DietPlans.Delete(id) {
		s.recordMutation("diet_plans", "deleted", "info", "Diet plan "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet plan deleted"})
}
