package handlers

import (
	"net/http"

	request "fiscalai/internal/adapter/http/dto/request"
	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"
	"fiscalai/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Dados da empresa inválidos", http.StatusBadRequest)

// CompanyHandler handles HTTP requests for company management and the
// fiscal-provider registration flow.
type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var payload request.CreateCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.usecase.GetByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

// RegisterFiscal submits the company to the fiscal provider. Succeeds at most
// once per company; a second call answers 409.
func (h *CompanyHandler) RegisterFiscal(c *gin.Context) {
	company, err := h.usecase.RegisterFiscal(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}
