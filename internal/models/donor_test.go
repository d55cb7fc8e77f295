package models

import "testing"

func TestSummarizeDonors(t *testing.T) {
	donors := []Donor{
		{ID: "DNR-001", Name: "John Smith", ContributionAmount: 5000, ContributionType: "Money"},
		{ID: "DNR-002", Name: "Green Food Bank", ContributionAmount: 500, ContributionType: "Food"},
		{ID: "DNR-003", Name: "Emily Johnson", ContributionAmount: 2500, ContributionType: "Money"},
	}

	summary := SummarizeDonors(donors)

	if summary.Total != 8000 {
		t.Errorf("Total = %v, want 8000", summary.Total)
	}
	if summary.ByType["Money"] != 7500 {
		t.Errorf("ByType[Money] = %v, want 7500", summary.ByType["Money"])
	}
	if summary.ByType["Food"] != 500 {
		t.Errorf("ByType[Food] = %v, want 500", summary.ByType["Food"])
	}
}

func TestSummarizeDonors_AbsentTypeIsZero(t *testing.T) {
	summary := SummarizeDonors([]Donor{
		{ID: "DNR-001", Name: "John Smith", ContributionAmount: 100, ContributionType: "Money"},
	})

	value, exists := summary.ByType["Food"]
	if !exists {
		t.Fatal("ByType missing the Food entry")
	}
	if value != 0 {
		t.Errorf("ByType[Food] = %v, want 0", value)
	}
}

func TestSummarizeDonors_Empty(t *testing.T) {
	summary := SummarizeDonors(nil)
	if summary.Total != 0 {
		t.Errorf("Total = %v, want 0", summary.Total)
	}
	if summary.ByType["Money"] != 0 || summary.ByType["Food"] != 0 {
		t.Errorf("ByType = %v, want zeroes", summary.ByType)
	}
}

func TestInventoryLowStockBoundary(t *testing.T) {
	cases := []struct {
		quantity float64
		want     bool
	}{
		{5, true},
		{10, true},
		{10.5, false},
		{11, false},
		{20, false},
	}

	for _, tc := range cases {
		item := InventoryItem{Name: "Rice", Quantity: tc.quantity}
		if got := item.LowStock(); got != tc.want {
			t.Errorf("LowStock() at quantity %v = %v, want %v", tc.quantity, got, tc.want)
		}
	}
}

func TestOrderInProgress(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"Pending", true},
		{"Cooking", true},
		{"Dispatched", false},
		{"Delivered", false},
	}

	for _, tc := range cases {
		order := Order{ID: "ORD-001", Status: tc.status}
		if got := order.InProgress(); got != tc.want {
			t.Errorf("InProgress() with status %s = %v, want %v", tc.status, got, tc.want)
		}
	}
}
