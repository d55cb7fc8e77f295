package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/store"
)

// today returns the current date in the console's YYYY-MM-DD form.
func today() string {
	return time.Now().Format("2006-01-02")
}

// parseNumber converts a form field to a number, recording a per-field
// message when it is missing or non-numeric.
func parseNumber(value, field, label string, fields map[string]string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		fields[field] = label + " is required"
		return 0
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fields[field] = label + " must be a number"
		return 0
	}
	return n
}

// respondStoreError maps collection errors onto HTTP responses:
// validation failures carry the offending fields, missing identifiers
// are 404s.
func respondStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// recordMutation updates the activity monitor and prometheus counters
// for a screen mutation, and pushes a notification when a message is
// given.
func (s *Server) recordMutation(screen, action, level, message string) {
	s.monitor.RecordMutation(screen, action)
	s.collectors.Mutations.WithLabelValues(screen, action).Inc()
	if message != "" {
		s.feed.Notify(level, message)
	}
}
