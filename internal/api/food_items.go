package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

// foodItemRequest is the shared create/update form of the food catalog.
type foodItemRequest struct {
	Name         string   `json:"name"`
	Calories     string   `json:"calories"`
	Protein      string   `json:"protein"`
	Carbs        string   `json:"carbs"`
	Fats         string   `json:"fats"`
	Allergens    []string `json:"allergens"`
	DietPlan     string   `json:"diet_plan"`
	Customizable bool     `json:"customizable"`
}

// toFoodItem parses the numeric form fields, recording problems in
// fields. Macros other than calories are optional.
func (r foodItemRequest) toFoodItem(fields map[string]string) models.FoodItem {
	item := models.FoodItem{
		Name:         r.Name,
		Calories:     parseNumber(r.Calories, "calories", "Calories", fields),
		Allergens:    r.Allergens,
		DietPlan:     r.DietPlan,
		Customizable: r.Customizable,
	}
	if r.Protein != "" {
		item.Protein = parseNumber(r.Protein, "protein", "Protein", fields)
	}
	if r.Carbs != "" {
		item.Carbs = parseNumber(r.Carbs, "carbs", "Carbs", fields)
	}
	if r.Fats != "" {
		item.Fats = parseNumber(r.Fats, "fats", "Fats", fields)
	}
	return item
}

func (s *Server) handleListFoodItems(c *gin.Context) {
	filters := c.QueryArray("filter")
	if plan := c.Query("diet_plan"); plan != "" {
		filters = append(filters, plan)
	}

	items := s.stores.FoodItems.Visible(c.Query("q"), filters)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (s *Server) handleCreateFoodItem(c *gin.Context) {
	var req foodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]string)
	item := req.toFoodItem(fields)
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	created, err := s.stores.FoodItems.Add(item)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("food_items", "added", "info", "Food item "+created.Name+" added")
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateFoodItem(c *gin.Context) {
	var req foodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]string)
	item := req.toFoodItem(fields)
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	updated, err := s.stores.FoodItems.Update(c.Param("id"), func(existing models.FoodItem) models.FoodItem {
		item.ID = existing.ID
		return item
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("food_items", "updated", "info", "Food item "+updated.Name+" updated")
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteFoodItem(c *gin.Context) {
	id := c.Param("id")
	if s.stores.FoodItems.Delete(id) {
		s.recordMutation("food_items", "deleted", "info", "Food item "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}
