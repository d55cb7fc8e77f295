package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"merrymeal/internal/auth"
	"merrymeal/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLoginPage serves the login screen. An already-authenticated
// visitor is sent straight to the dashboard.
func (s *Server) handleLoginPage(c *gin.Context) {
	if _, err := s.sessions.Verify(sessionToken(c)); err == nil {
		c.Redirect(http.StatusFound, DashboardPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := auth.ValidateLogin(req.Email, req.Password); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	user, token, err := s.sessions.Login(req.Email, req.Password)
	if err != nil {
		s.monitor.RecordLogin(false)
		s.collectors.Logins.WithLabelValues("failed").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	s.monitor.RecordLogin(true)
	s.collectors.Logins.WithLabelValues("succeeded").Inc()
	s.log.Info("user logged in", zap.String("email", user.Email))

	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user":     user,
		"redirect": DashboardPath,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.sessions.Logout(sessionToken(c))
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"redirect": LoginPath})
}

func (s *Server) handleWhoAmI(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleRegister(c *gin.Context) {
	var req auth.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := auth.ValidateRegistration(req); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	user := models.User{
		Email: req.Email,
		Name:  req.FirstName + " " + req.LastName,
		Role:  "volunteer",
	}
	if err := s.sessions.Register(user, req.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": err.Error()}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("account registered", zap.String("email", user.Email))
	c.JSON(http.StatusCreated, gin.H{"user": user, "redirect": LoginPath})
}
