package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type addDonorRequest struct {
	Name               string `json:"name"`
	ContributionAmount string `json:"contribution_amount"`
	ContributionType   string `json:"contribution_type"`
	DateOfContribution string `json:"date_of_contribution"`
}

func (s *Server) handleListDonors(c *gin.Context) {
	donors := s.stores.Donors.Visible(c.Query("q"), c.QueryArray("filter"))

	// Aggregates always cover the full registry, not the filtered view.
	summary := models.SummarizeDonors(s.stores.Donors.List())

	c.JSON(http.StatusOK, gin.H{
		"donors":  donors,
		"total":   len(donors),
		"summary": summary,
	})
}

func (s *Server) handleDonorSummary(c *gin.Context) {
	c.JSON(http.StatusOK, models.SummarizeDonors(s.stores.Donors.List()))
}

func (s *Server) handleAddDonor(c *gin.Context) {
	var req addDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]string)
	amount := parseNumber(req.ContributionAmount, "contribution_amount", "Contribution amount", fields)
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	donor := models.Donor{
		Name:               req.Name,
		ContributionAmount: amount,
		ContributionType:   req.ContributionType,
		DateOfContribution: req.DateOfContribution,
	}
	if donor.ContributionType == "" {
		donor.ContributionType = string(models.ContributionMoney)
	}
	if donor.DateOfContribution == "" {
		donor.DateOfContribution = today()
	}

	created, err := s.stores.Donors.Add(donor)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("donors", "added", "info", "New donor "+created.Name+" registered")
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteDonor(c *gin.Context) {
	id := c.Param("id")
	if s.stores.Donors.Delete(id) {
		s.recordMutation("donors", "deleted", "info", "Donor "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donor deleted"})
}
