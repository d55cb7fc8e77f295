package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merrymeal/internal/models"
)

type updateEmployeeRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
	HireDate   *string `json:"hire_date"`
}

func (s *Server) handleListEmployees(c *gin.Context) {
	employees := s.stores.Employees.Visible(c.Query("q"), c.QueryArray("filter"))
	c.JSON(http.StatusOK, gin.H{"employees": employees, "total": len(employees)})
}

func (s *Server) handleGetEmployee(c *gin.Context) {
	employee, err := s.stores.Employees.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// handleUpdateEmployee merges the submitted fields into the record.
// Absent fields keep their current value.
func (s *Server) handleUpdateEmployee(c *gin.Context) {
	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.stores.Employees.Update(c.Param("id"), func(e models.Employee) models.Employee {
		if req.Name != nil {
			e.Name = *req.Name
		}
		if req.Role != nil {
			e.Role = *req.Role
		}
		if req.Department != nil {
			e.Department = *req.Department
		}
		if req.Status != nil {
			e.Status = *req.Status
		}
		if req.HireDate != nil {
			e.HireDate = *req.HireDate
		}
		return e
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	s.recordMutation("employees", "updated", "info", "Employee "+updated.ID+" updated")
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if s.stores.Employees.Delete(id) {
		s.recordMutation("employees", "deleted", "info", "Employee "+id+" removed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
