package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type addInventoryRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// inventoryRow decorates an item with its low-stock flag for display.
type inventoryRow struct {
	models.InventoryItem
	LowStock bool `json:"low_stock"`
}

func (s *Server) handleListInventory(c *gin.Context) {
	filters := c.QueryArray("filter")
	// The screen's category dropdown sends "All" for no filtering.
	if category := c.Query("category"); category != "" && category != "All" {
		filters = append(filters, category)
	}

	items := s.stores.Inventory.Visible(c.Query("q"), filters)
	rows := make([]inventoryRow, 0, len(items))
	lowStock := 0
	for _, item := range items {
		row := inventoryRow{InventoryItem: item, LowStock: item.LowStock()}
		if row.LowStock {
			lowStock++
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     rows,
		"total":     len(rows),
		"low_stock": lowStock,
	})
}

func (s *Server) handleAddInventoryItem(c *gin.Context) {
	var req addInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]string)
	quantity := parseNumber(req.Quantity, "quantity", "Quantity", fields)
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	item := models.InventoryItem{
		Name:        req.Name,
		Quantity:    quantity,
		Unit:        req.Unit,
		Category:    req.Category,
		LastUpdated: today(),
	}
	if item.Unit == "" {
		item.Unit = string(models.UnitKilogram)
	}
	if item.Category == "" {
		item.Category = string(models.CategoryDryGoods)
	}

	created, err := s.stores.Inventory.Add(item)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if created.LowStock() {
		s.recordMutation("inventory", "added", "warning",
			fmt.Sprintf("Low Inventory: %s (%g %s remaining)", created.Name, created.Quantity, created.Unit))
	} else {
		s.recordMutation("inventory", "added", "info", "Inventory item "+created.Name+" added")
	}
	s.updateLowStockGauge()

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteInventoryItem(c *gin.Context) {
	id := c.Param("id")
	if s.stores.Inventory.Delete(id) {
		s.recordMutation("inventory", "deleted", "info", "Inventory item "+id+" removed")
		s.updateLowStockGauge()
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

func (s *Server) updateLowStockGauge() {
	count := 0
	for _, item := range s.stores.Inventory.List() {
		if item.LowStock() {
			count++
		}
	}
	s.collectors.LowStockItems.Set(float64(count))
}
