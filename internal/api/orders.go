package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type createOrderRequest struct {
	CustomerName string `json:"customer_name"`
	MealPlan     string `json:"meal_plan"`
	Date         string `json:"date"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleListOrders(c *gin.Context) {
	orders := s.stores.Orders.Visible(c.Query("q"), c.QueryArray("filter"))
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.stores.Orders.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		MealPlan:     req.MealPlan,
		Status:       string(models.OrderStatusPending),
		Date:         req.Date,
	}
	if order.Date == "" {
		order.Date = today()
	}

	created, err := s.stores.Orders.Add(order)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("orders", "added", "info", "New Order "+created.ID+" Created")
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"status": "Unknown order status"}})
		return
	}

	updated, err := s.stores.Orders.Update(c.Param("id"), func(o models.Order) models.Order {
		o.Status = req.Status
		return o
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("orders", "updated", "info", "Order "+updated.ID+" is now "+updated.Status)
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if s.stores.Orders.Delete(id) {
		s.recordMutation("orders", "deleted", "info", "Order "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
