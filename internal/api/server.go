package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"merrymeal/internal/auth"
	"merrymeal/internal/monitoring"
	"merrymeal/internal/store"
)

// Route paths the session gate redirects between.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Server is the admin console HTTP server. Every screen of the console
// is a route group backed by its own in-memory collection.
type Server struct {
	router     *gin.Engine
	stores     *store.Stores
	sessions   *auth.Manager
	monitor    *monitoring.Monitor
	collectors *monitoring.Collectors
	feed       *Feed
	log        *zap.Logger
}

// NewServer creates the console server and wires up all routes.
func NewServer(stores *store.Stores, sessions *auth.Manager, monitor *monitoring.Monitor, collectors *monitoring.Collectors, log *zap.Logger) *Server {
	s := &Server{
		router:     gin.Default(),
		stores:     stores,
		sessions:   sessions,
		monitor:    monitor,
		collectors: collectors,
		feed:       NewFeed(log),
		log:        log,
	}

	s.setupRoutes()
	return s
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all console endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MerryMeal admin console is running"})
	})

	// The login page is public; an authenticated visit bounces to the
	// dashboard.
	s.router.GET(LoginPath, s.handleLoginPage)

	// Unknown paths without a session also land on the login page.
	s.router.NoRoute(func(c *gin.Context) {
		if _, err := s.sessions.Verify(sessionToken(c)); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	// Console pages: everything else redirects to /login without a
	// session.
	pages := s.router.Group("/", s.RequirePage())
	{
		pages.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, DashboardPath)
		})
		pages.GET(DashboardPath, s.handleDashboardStats)
		pages.GET("/orders", s.handleListOrders)
		pages.GET("/meal-plans", s.handleListMealPlans)
		pages.GET("/inventory", s.handleListInventory)
		pages.GET("/employees", s.handleListEmployees)
		pages.GET("/donors", s.handleListDonors)
		pages.GET("/food-items", s.handleListFoodItems)
		pages.GET("/diet-plans", s.handleListDietPlans)
	}

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/auth/login", s.handleLogin)
		v1.POST("/auth/register", s.handleRegister)

		protected := v1.Group("", s.RequireSession())
		{
			protected.POST("/auth/logout", s.handleLogout)
			protected.GET("/auth/me", s.handleWhoAmI)

			protected.GET("/dashboard/stats", s.handleDashboardStats)
			protected.GET("/dashboard/notifications", s.handleNotifications)
			protected.GET("/stats", s.handleActivityStats)

			protected.GET("/orders", s.handleListOrders)
			protected.POST("/orders", s.handleCreateOrder)
			protected.GET("/orders/:id", s.handleGetOrder)
			protected.PUT("/orders/:id/status", s.handleUpdateOrderStatus)
			protected.DELETE("/orders/:id", s.handleDeleteOrder)

			protected.GET("/donors", s.handleListDonors)
			protected.GET("/donors/summary", s.handleDonorSummary)
			protected.POST("/donors", s.handleAddDonor)
			protected.DELETE("/donors/:id", s.handleDeleteDonor)

			protected.GET("/inventory", s.handleListInventory)
			protected.POST("/inventory", s.handleAddInventoryItem)
			protected.DELETE("/inventory/:id", s.handleDeleteInventoryItem)

			protected.GET("/employees", s.handleListEmployees)
			protected.GET("/employees/:id", s.handleGetEmployee)
			protected.PUT("/employees/:id", s.handleUpdateEmployee)
			protected.DELETE("/employees/:id", s.handleDeleteEmployee)

			protected.GET("/food-items", s.handleListFoodItems)
			protected.POST("/food-items", s.handleCreateFoodItem)
			protected.PUT("/food-items/:id", s.handleUpdateFoodItem)
			protected.DELETE("/food-items/:id", s.handleDeleteFoodItem)

			protected.GET("/diet-plans", s.handleListDietPlans)
			protected.POST("/diet-plans", s.handleCreateDietPlan)
			protected.DELETE("/diet-plans/:id", s.handleDeleteDietPlan)

			protected.GET("/meal-plans", s.handleListMealPlans)
			protected.GET("/meal-plans/:id", s.handleGetMealPlan)
			protected.POST("/meal-plans", s.handleCreateMealPlan)
			protected.DELETE("/meal-plans/:id", s.handleDeleteMealPlan)

			protected.GET("/ws", s.handleNotificationSocket)
		}
	}
}
