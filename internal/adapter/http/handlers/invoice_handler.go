package handlers

import (
	"net/http"
	"strconv"

	request "fiscalai/internal/adapter/http/dto/request"
	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase"
	"fiscalai/internal/usecase/interfaces"
	"fiscalai/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Dados da nota fiscal inválidos", http.StatusBadRequest)

// InvoiceHandler handles NFS-e issuance, listing and status reconciliation.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var payload request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Issue(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := interfaces.InvoiceFilter{
		CompanyID: c.Query("company_id"),
		Status:    entities.InvoiceStatus(c.Query("status")),
		Limit:     queryInt(c, "limit"),
		Offset:    queryInt(c, "offset"),
	}

	invoices, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceList(invoices, total))
}

// GetInvoiceStatus polls the provider and reconciles the stored invoice. The
// optional invoice_id query pins the stored record when the numero is not yet
// persisted.
func (h *InvoiceHandler) GetInvoiceStatus(c *gin.Context) {
	result, err := h.usecase.CheckStatus(c.Request.Context(), c.Param("numero"), c.Query("invoice_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceStatus(result))
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
