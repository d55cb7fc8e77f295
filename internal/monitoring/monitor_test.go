package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordMutation(t *testing.T) {
	m := NewMonitor()

	m.RecordMutation("inventory", "added")
	m.RecordMutation("inventory", "added")
	m.RecordMutation("inventory", "deleted")

	metrics := m.GetMetrics()

	if metrics["inventory_added_total"] != 2 {
		t.Errorf("Expected 'inventory_added_total' to be 2, but got %v", metrics["inventory_added_total"])
	}
	if metrics["inventory_deleted_total"] != 1 {
		t.Errorf("Expected 'inventory_deleted_total' to be 1, but got %v", metrics["inventory_deleted_total"])
	}
	if _, exists := metrics["inventory_last_activity"]; !exists {
		t.Errorf("Expected 'inventory_last_activity' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordLogin(t *testing.T) {
	m := NewMonitor()

	m.RecordLogin(true)
	m.RecordLogin(true)
	m.RecordLogin(false)

	metrics := m.GetMetrics()

	if metrics["logins_succeeded_total"] != 2 {
		t.Errorf("Expected 'logins_succeeded_total' to be 2, but got %v", metrics["logins_succeeded_total"])
	}
	if metrics["logins_failed_total"] != 1 {
		t.Errorf("Expected 'logins_failed_total' to be 1, but got %v", metrics["logins_failed_total"])
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}
