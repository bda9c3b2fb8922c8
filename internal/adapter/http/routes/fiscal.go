package routes

import (
	"fiscalai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCompanies = "/companies"
	PathInvoices  = "/invoices"
)

func addFiscalRoutes(rg *gin.RouterGroup, companyHandler *handlers.CompanyHandler, invoiceHandler *handlers.InvoiceHandler, connectionHandler *handlers.ConnectionHandler) {
	companies := rg.Group(PathCompanies)
	{
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:company_id", companyHandler.GetCompany)
		companies.POST("/:company_id/fiscal-registration", companyHandler.RegisterFiscal)
		companies.POST("/:company_id/fiscal-connection/check", connectionHandler.CheckConnection)
		companies.GET("/:company_id/fiscal-connection", connectionHandler.GetConnectionStatus)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.IssueInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:numero/status", invoiceHandler.GetInvoiceStatus)
	}
}
