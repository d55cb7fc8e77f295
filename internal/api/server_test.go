package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"merrymeal/internal/api"
	"merrymeal/internal/auth"
	"merrymeal/internal/models"
	"merrymeal/internal/monitoring"
	"merrymeal/internal/store"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	creds := auth.NewMemoryCredentials()
	if err := creds.Create(models.User{
		Email: "test@example.com",
		Name:  "John Doe",
		Role:  "admin",
	}, "password123"); err != nil {
		t.Fatalf("failed to seed credentials: %v", err)
	}
	sessions := auth.NewManager(creds, "test-secret", time.Hour)

	return api.NewServer(
		store.Seed(),
		sessions,
		monitoring.NewMonitor(),
		monitoring.NewCollectors(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func doRequest(server *api.Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, server *api.Server, email, password string) string {
	t.Helper()
	w := doRequest(server, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}
	var response struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	return response.Token
}

func TestLogin(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])
	assert.Equal(t, "/dashboard", response["redirect"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, "admin", user["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "test@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "not-an-email",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "email")
}

func TestSessionGate_PageRedirects(t *testing.T) {
	server := newTestServer(t)

	// No session: every page bounces to /login.
	for _, path := range []string{"/", "/dashboard", "/orders", "/inventory", "/donors"} {
		w := doRequest(server, "GET", path, "", nil)
		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "path %s", path)
	}

	// The login page itself stays reachable.
	w := doRequest(server, "GET", "/login", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// With a session: the login page bounces to the dashboard.
	token := loginAs(t, server, "test@example.com", "password123")
	w = doRequest(server, "GET", "/login", token, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// The root path lands on the dashboard.
	w = doRequest(server, "GET", "/", token, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = doRequest(server, "GET", "/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGate_APIRequiresToken(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "GET", "/api/v1/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(server, "GET", "/api/v1/orders", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "POST", "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterThenLogin(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "POST", "/api/v1/auth/register", "", gin.H{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"email":            "jane@example.com",
		"password":         "Passw0rd!",
		"confirm_password": "Passw0rd!",
		"phone_number":     "555-0100",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	token := loginAs(t, server, "jane@example.com", "Passw0rd!")
	assert.NotEmpty(t, token)
}

func TestRegister_WeakPassword(t *testing.T) {
	server := newTestServer(t)

	w := doRequest(server, "POST", "/api/v1/auth/register", "", gin.H{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"email":            "jane@example.com",
		"password":         "weakpass",
		"confirm_password": "weakpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "password")
}

func TestInventory_ListAndAdd(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "GET", "/api/v1/inventory", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Items []struct {
			Name     string  `json:"name"`
			Quantity float64 `json:"quantity"`
			LowStock bool    `json:"low_stock"`
		} `json:"items"`
		Total    int `json:"total"`
		LowStock int `json:"low_stock"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 3, listing.Total)
	assert.Equal(t, 1, listing.LowStock) // Tomato Sauce at 5 liters

	w = doRequest(server, "POST", "/api/v1/inventory", token, gin.H{
		"name":     "Oats",
		"quantity": "5",
		"unit":     "kg",
		"category": "Dry Goods",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(server, "GET", "/api/v1/inventory?category=Dry%20Goods", token, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.Total)
	for _, item := range listing.Items {
		switch item.Name {
		case "Oats":
			assert.True(t, item.LowStock, "Oats at 5 kg should be low stock")
		case "Rice":
			assert.False(t, item.LowStock, "Rice at 20 kg should not be low stock")
		}
	}
}

func TestInventory_AddValidation(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	var response map[string]map[string]string

	// Missing name.
	w := doRequest(server, "POST", "/api/v1/inventory", token, gin.H{"quantity": "5"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "name")

	// Non-numeric quantity.
	w = doRequest(server, "POST", "/api/v1/inventory", token, gin.H{"name": "Oats", "quantity": "lots"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "quantity")

	// Nothing was added.
	w = doRequest(server, "GET", "/api/v1/inventory", token, nil)
	var listing struct {
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 3, listing.Total)
}

func TestDonors_SummaryIgnoresFilters(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "GET", "/api/v1/donors?filter=Food", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Donors  []models.Donor      `json:"donors"`
		Summary models.DonorSummary `json:"summary"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Donors, 1)
	assert.Equal(t, float64(8000), response.Summary.Total)
	assert.Equal(t, float64(7500), response.Summary.ByType["Money"])
	assert.Equal(t, float64(500), response.Summary.ByType["Food"])
}

func TestOrders_StatusUpdate(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "PUT", "/api/v1/orders/MP-001/status", token, gin.H{"status": "Dispatched"})
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "Dispatched", order.Status)

	w = doRequest(server, "PUT", "/api/v1/orders/MP-001/status", token, gin.H{"status": "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(server, "PUT", "/api/v1/orders/ORD-999/status", token, gin.H{"status": "Cooking"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrders_CreateAndDelete(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "POST", "/api/v1/orders", token, gin.H{
		"customer_name": "Alice Brown",
		"meal_plan":     "Vegan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "ORD-003", order.ID)
	assert.Equal(t, "Pending", order.Status)
	assert.NotEmpty(t, order.Date)

	w = doRequest(server, "DELETE", "/api/v1/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is a no-op, not an error.
	w = doRequest(server, "DELETE", "/api/v1/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, "GET", "/api/v1/orders/"+order.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodItems_SharedForm(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	// Create path: diet plan is required.
	w := doRequest(server, "POST", "/api/v1/food-items", token, gin.H{
		"name":     "Lentil Soup",
		"calories": "220",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["errors"], "diet_plan")

	w = doRequest(server, "POST", "/api/v1/food-items", token, gin.H{
		"name":      "Lentil Soup",
		"calories":  "220",
		"protein":   "14",
		"diet_plan": "Vegan",
		"allergens": []string{},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.FoodItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 3, item.ID)

	// Update path keyed by id, identifier preserved.
	w = doRequest(server, "PUT", "/api/v1/food-items/1", token, gin.H{
		"name":      "Grilled Chicken Salad XL",
		"calories":  "410",
		"diet_plan": "Keto",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "Grilled Chicken Salad XL", item.Name)

	w = doRequest(server, "PUT", "/api/v1/food-items/999", token, gin.H{
		"name":      "Ghost Dish",
		"calories":  "1",
		"diet_plan": "Keto",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployees_UpdateCommits(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "PUT", "/api/v1/employees/EMP-001", token, gin.H{
		"status": "On Leave",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// The edit is visible on a fresh read, not just in the response.
	w = doRequest(server, "GET", "/api/v1/employees/EMP-001", token, nil)
	var employee models.Employee
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &employee))
	assert.Equal(t, "On Leave", employee.Status)
	assert.Equal(t, "Sarah Johnson", employee.Name)
}

func TestDietPlans_CreateCommits(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "POST", "/api/v1/diet-plans", token, gin.H{
		"name":         "Mediterranean Diet",
		"description":  "Olive oil forward plan",
		"health_goals": []string{"Heart Health"},
		"restrictions": []string{"Low Red Meat"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var plan models.DietPlan
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "DP-003", plan.ID)

	w = doRequest(server, "GET", "/api/v1/diet-plans?filter=Heart%20Health", token, nil)
	var listing struct {
		Plans []models.DietPlan `json:"plans"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Plans, 2) // seeded Vegan Diet plus the new plan
}

func TestMealPlans_CreateAndGet(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "POST", "/api/v1/meal-plans", token, gin.H{
		"name":        "Paleo Starter",
		"description": "Whole foods only",
		"calories":    "1900",
		"diet_plan":   "Paleo",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var plan models.MealPlan
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "MP-003", plan.ID)
	assert.Empty(t, plan.Foods)

	w = doRequest(server, "GET", "/api/v1/meal-plans/MP-001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Foods, 2)
}

func TestDashboardStats(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "GET", "/api/v1/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Stats struct {
			OrdersInProgress  int     `json:"orders_in_progress"`
			MealsDispatched   int     `json:"meals_dispatched"`
			DonationsReceived float64 `json:"donations_received"`
			LowInventoryItems int     `json:"low_inventory_items"`
		} `json:"stats"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Stats.OrdersInProgress)  // MP-001 Cooking
	assert.Equal(t, 1, response.Stats.MealsDispatched)   // MP-002 Dispatched
	assert.Equal(t, float64(8000), response.Stats.DonationsReceived)
	assert.Equal(t, 1, response.Stats.LowInventoryItems) // Tomato Sauce at 5
}

func TestNotifications_RecordMutationsAppear(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	doRequest(server, "POST", "/api/v1/orders", token, gin.H{
		"customer_name": "Alice Brown",
		"meal_plan":     "Vegan",
	})
	doRequest(server, "POST", "/api/v1/inventory", token, gin.H{
		"name":     "Oats",
		"quantity": "5",
		"unit":     "kg",
		"category": "Dry Goods",
	})

	w := doRequest(server, "GET", "/api/v1/dashboard/notifications", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Notifications []struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"notifications"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Notifications, 2)
	assert.Contains(t, response.Notifications[0].Message, "ORD-003")
	assert.Equal(t, "warning", response.Notifications[1].Type) // Oats landed below the threshold
}

func TestActivityStats(t *testing.T) {
	server := newTestServer(t)
	token := loginAs(t, server, "test@example.com", "password123")

	w := doRequest(server, "GET", "/api/v1/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "uptime_seconds")
	assert.Contains(t, response, "logins_succeeded_total")
}
