package models

// Donor represents a contributor to the meal program
type Donor struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ContributionAmount float64 `json:"contribution_amount"`
	ContributionType   string  `json:"contribution_type"`
	DateOfContribution string  `json:"date_of_contribution"`
}

// RecordID returns the donor identifier
func (d Donor) RecordID() string { return d.ID }

// ContributionType represents the kind of donation received
type ContributionType string

const (
	ContributionMoney ContributionType = "Money"
	ContributionFood  ContributionType = "Food"
)

// ContributionTypes lists the recognized donation kinds.
var ContributionTypes = []ContributionType{ContributionMoney, ContributionFood}

// DonorSummary aggregates contributions across the full donor collection.
type DonorSummary struct {
	Total  float64            `json:"total"`
	ByType map[string]float64 `json:"by_type"`
}

// SummarizeDonors computes the contribution total and per-type subtotals.
// Types with no donors report 0 rather than being absent.
func SummarizeDonors(donors []Donor) DonorSummary {
	summary := DonorSummary{ByType: make(map[string]float64, len(ContributionTypes))}
	for _, ct := range ContributionTypes {
		summary.ByType[string(ct)] = 0
	}
	for _, d := range donors {
		summary.Total += d.ContributionAmount
		summary.ByType[d.ContributionType] += d.ContributionAmount
	}
	return summary
}
