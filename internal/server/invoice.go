package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
)

type invoiceItemPayload struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	TotalFees   decimal.Decimal `json:"totalFees"`
}

type createInvoicePayload struct {
	Number        int64                `json:"number" binding:"required"`
	CreationDate  *time.Time           `json:"creationDate"`
	CompanyName   string               `json:"companyName" binding:"required"`
	PaymentStatus string               `json:"paymentStatus" binding:"omitempty,oneof=UNPAID PAID"`
	TotalCost     decimal.Decimal      `json:"totalCost"`
	Items         []invoiceItemPayload `json:"items"`
}

type updateInvoicePayload struct {
	Number        int64   `json:"number" binding:"required"`
	CompanyName   *string `json:"companyName"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=UNPAID PAID"`
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var payload createInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	items := make([]itemdomain.Item, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, itemdomain.Item{
			Description: item.Description,
			Quantity:    item.Quantity,
			TotalFee:    item.TotalFees,
		})
	}

	invoice, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		Number:        payload.Number,
		CreationDate:  payload.CreationDate,
		CompanyName:   payload.CompanyName,
		PaymentStatus: invoicedomain.PaymentStatus(payload.PaymentStatus),
		TotalCost:     payload.TotalCost,
		Items:         items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (s *Server) ListInvoices(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (s *Server) ListInvoiceSummaries(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summarize(invoices))
}

// SearchInvoices returns a singleton list, or an empty list when the
// number is unknown; absence is not an error on this route.
func (s *Server) SearchInvoices(c *gin.Context) {
	number, err := parseInvoiceNumber(c.Param("number"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoice, err := s.invoiceSvc.FindByNumber(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result := []invoicedomain.Invoice{}
	if invoice != nil {
		result = append(result, *invoice)
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var payload updateInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	req := invoicedomain.UpdateInvoiceRequest{
		Number:      payload.Number,
		CompanyName: payload.CompanyName,
	}
	if payload.PaymentStatus != nil {
		status := invoicedomain.PaymentStatus(*payload.PaymentStatus)
		req.PaymentStatus = &status
	}

	if err := s.invoiceSvc.Update(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteExpiredInvoices(c *gin.Context) {
	if err := s.invoiceSvc.DeleteExpired(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ListUnpaidInvoices(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices, err := s.invoiceSvc.FindUnpaidByCompany(c.Request.Context(), c.Param("companyName"), page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (s *Server) ListUnpaidInvoiceSummaries(c *gin.Context) {
	page, err := bindPagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices, err := s.invoiceSvc.FindUnpaidByCompany(c.Request.Context(), c.Param("companyName"), page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summarize(invoices))
}

func summarize(invoices []invoicedomain.Invoice) []invoicedomain.InvoiceSummary {
	summaries := make([]invoicedomain.InvoiceSummary, 0, len(invoices))
	for _, invoice := range invoices {
		summaries = append(summaries, invoice.Summary())
	}
	return summaries
}
