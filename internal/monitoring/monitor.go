package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides activity metrics for the console
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordMutation counts a screen mutation (added, updated, deleted) and
// stamps the screen's last-activity time.
func (m *Monitor) RecordMutation(screen, action string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	key := screen + "_" + action + "_total"
	count, _ := m.metrics[key].(int)
	m.metrics[key] = count + 1
	m.metrics[screen+"_last_activity"] = time.Now().Format(time.RFC3339)
}

// RecordLogin counts a login attempt by outcome.
func (m *Monitor) RecordLogin(success bool) {
	outcome := "failed"
	if success {
		outcome = "succeeded"
	}

	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	key := "logins_" + outcome + "_total"
	count, _ := m.metrics[key].(int)
	m.metrics[key] = count + 1
}
