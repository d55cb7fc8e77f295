package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

// dashboardStats is the quick-stats block at the top of the dashboard.
type dashboardStats struct {
	OrdersInProgress  int     `json:"orders_in_progress"`
	MealsDispatched   int     `json:"meals_dispatched"`
	DonationsReceived float64 `json:"donations_received"`
	LowInventoryItems int     `json:"low_inventory_items"`
}

// handleDashboardStats computes the dashboard aggregates from the live
// collections.
func (s *Server) handleDashboardStats(c *gin.Context) {
	var stats dashboardStats

	for _, order := range s.stores.Orders.List() {
		if order.InProgress() {
			stats.OrdersInProgress++
		}
		if order.Status == string(models.OrderStatusDispatched) || order.Status == string(models.OrderStatusDelivered) {
			stats.MealsDispatched++
		}
	}

	stats.DonationsReceived = models.SummarizeDonors(s.stores.Donors.List()).Total

	for _, item := range s.stores.Inventory.List() {
		if item.LowStock() {
			stats.LowInventoryItems++
		}
	}
	s.collectors.LowStockItems.Set(float64(stats.LowInventoryItems))

	c.JSON(http.StatusOK, gin.H{
		"stats":         stats,
		"notifications": s.feed.Recent(),
	})
}

func (s *Server) handleNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": s.feed.Recent()})
}

func (s *Server) handleActivityStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
