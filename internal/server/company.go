package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
)

type updateCompanyPayload struct {
	CompanyName *string `json:"companyName"`
	Address     struct {
		Street  *string `json:"street"`
		City    *string `json:"city"`
		State   *string `json:"state"`
		ZipCode *string `json:"zipCode"`
	} `json:"address"`
	ContactName *string `json:"contactName"`
	Title       *string `json:"title"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (s *Server) ListCompanies(c *gin.Context) {
	companies, err := s.companySvc.FetchAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (s *Server) ListCompanySummaries(c *gin.Context) {
	summaries, err := s.companySvc.FetchSummaries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (s *Server) CreateCompany(c *gin.Context) {
	var company companydomain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.companySvc.Create(c.Request.Context(), company); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created successfully", company.CompanyName),
	})
}

func (s *Server) UpdateCompany(c *gin.Context) {
	name := c.Param("companyName")

	var payload updateCompanyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	req := companydomain.UpdateCompanyRequest{
		CompanyName: payload.CompanyName,
		Street:      payload.Address.Street,
		City:        payload.Address.City,
		State:       payload.Address.State,
		ZipCode:     payload.Address.ZipCode,
		ContactName: payload.ContactName,
		Title:       payload.Title,
		PhoneNumber: payload.PhoneNumber,
	}

	if err := s.companySvc.Update(c.Request.Context(), name, req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
