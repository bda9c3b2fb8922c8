package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fiscalai/internal/adapter/http/handlers/mocks"
	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase"
	"fiscalai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validInvoiceJSON = `{
	"company_id": "cmp-1",
	"cliente_nome": "Cliente X",
	"cliente_documento": "529.982.247-25",
	"descricao_servico": "Consultoria em TI",
	"valor": 1500.00,
	"aliquota_iss": 5,
	"municipio": "São Paulo",
	"data_prestacao": "2026-08-01"
}`

func TestInvoiceHandler_IssueInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/invoices", h.IssueInvoice)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero value rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		body := `{"company_id":"cmp-1","cliente_nome":"X","cliente_documento":"123","descricao_servico":"S","valor":0,"municipio":"SP","data_prestacao":"2026-08-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unregistered company maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrCompanyNotRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(validInvoiceJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success renders fixed-point amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Issue(gomock.Any(), gomock.AssignableToTypeOf(usecase.IssueInvoiceInput{})).DoAndReturn(
			func(_ context.Context, in usecase.IssueInvoiceInput) (entities.Invoice, error) {
				if in.Valor.StringFixed(2) != "1500.00" {
					t.Fatalf("unexpected valor: %s", in.Valor)
				}
				iss, net := entities.ComputeISS(in.Valor, in.AliquotaISS)
				return entities.Invoice{
					ID:           "inv-1",
					CompanyID:    in.CompanyID,
					Numero:       "42",
					Valor:        in.Valor,
					AliquotaISS:  in.AliquotaISS,
					ValorISS:     iss,
					ValorLiquido: net,
					Status:       entities.InvoiceStatusAutorizada,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(validInvoiceJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		for _, want := range []string{`"valor":"1500.00"`, `"valor_iss":"75.00"`, `"valor_liquido":"1425.00"`} {
			if !bytes.Contains(w.Body.Bytes(), []byte(want)) {
				t.Fatalf("expected %s in body: %s", want, w.Body.String())
			}
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/v1/invoices", h.ListInvoices)

	uc.EXPECT().List(gomock.Any(), interfaces.InvoiceFilter{
		CompanyID: "cmp-1",
		Status:    entities.InvoiceStatusAutorizada,
		Limit:     10,
		Offset:    20,
	}).Return([]entities.Invoice{{ID: "inv-1", Valor: decimal.RequireFromString("10")}}, 31, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices?company_id=cmp-1&status=autorizada&limit=10&offset=20", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"total":31`)) {
		t.Fatalf("expected total in body: %s", w.Body.String())
	}
}

func TestInvoiceHandler_GetInvoiceStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *InvoiceHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/invoices/:numero/status", h.GetInvoiceStatus)
		return r
	}

	t.Run("provider timeout maps to 408", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().CheckStatus(gomock.Any(), "42", "").Return(usecase.InvoiceStatusResult{}, timeoutAPIError())

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/42/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestTimeout {
			t.Fatalf("expected 408, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newRouter(NewInvoiceHandler(uc))

		uc.EXPECT().CheckStatus(gomock.Any(), "42", "inv-1").Return(usecase.InvoiceStatusResult{
			Numero: "42",
			Status: entities.InvoiceStatusAutorizada,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/42/status?invoice_id=inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"autorizada"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
