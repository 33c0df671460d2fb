package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
)

type createItemPayload struct {
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	TotalFees     decimal.Decimal `json:"totalFees"`
	InvoiceNumber int64           `json:"invoiceNumber" binding:"required"`
}

func (s *Server) ListItems(c *gin.Context) {
	items, err := s.itemSvc.FetchAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) CreateItem(c *gin.Context) {
	var payload createItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	id, err := s.itemSvc.Create(c.Request.Context(), itemdomain.CreateItemRequest{
		Description:   payload.Description,
		Quantity:      payload.Quantity,
		TotalFee:      payload.TotalFees,
		InvoiceNumber: payload.InvoiceNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id.String(),
		"message": fmt.Sprintf("%s created successfully", payload.Description),
	})
}
