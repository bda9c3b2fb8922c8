package usecase

import (
	"context"
	"errors"
	"testing"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/infrastructure/nuvemfiscal"
	mock_interfaces "fiscalai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConnectionUseCase_CheckConnection(t *testing.T) {
	company := func() entities.Company {
		c := validCompany()
		c.ID = "cmp-1"
		return c
	}

	t.Run("blank company id", func(t *testing.T) {
		uc := NewConnectionUseCase(nil, nil, nil)
		_, err := uc.CheckConnection(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("company not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewConnectionUseCase(nil, companyRepo, nil)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(entities.Company{}, nil)

		_, err := uc.CheckConnection(context.Background(), "cmp-1")
		if !errors.Is(err, ErrCompanyNotFound) {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})

	t.Run("configuration error is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		statusRepo := mock_interfaces.NewMockIIntegrationStatusRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIFiscalGateway(ctrl)
		uc := NewConnectionUseCase(statusRepo, companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(company(), nil)
		gateway.EXPECT().HealthCheck(gomock.Any()).Return(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindConfiguration, Message: "sem credenciais"})
		// No Upsert expectation: a check that never ran must not be persisted.

		_, err := uc.CheckConnection(context.Background(), "cmp-1")
		if nuvemfiscal.KindOf(err) != nuvemfiscal.KindConfiguration {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})

	t.Run("auth failure records a specific message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		statusRepo := mock_interfaces.NewMockIIntegrationStatusRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIFiscalGateway(ctrl)
		uc := NewConnectionUseCase(statusRepo, companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(company(), nil)
		gateway.EXPECT().HealthCheck(gomock.Any()).Return(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindAuth, HTTPStatus: 401})
		statusRepo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.FiscalIntegrationStatus{})).DoAndReturn(
			func(_ context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error) {
				if st.Status != entities.ConnectionStatusFalha || st.Mensagem != "Erro de autenticação" {
					t.Fatalf("unexpected status record: %+v", st)
				}
				if st.UltimaVerificacao.IsZero() {
					t.Fatal("expected ultima_verificacao")
				}
				return st, nil
			},
		)

		res, err := uc.CheckConnection(context.Background(), "cmp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ConnectionStatusFalha {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("timeout records a timeout message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		statusRepo := mock_interfaces.NewMockIIntegrationStatusRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIFiscalGateway(ctrl)
		uc := NewConnectionUseCase(statusRepo, companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(company(), nil)
		gateway.EXPECT().HealthCheck(gomock.Any()).Return(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindTimeout})
		statusRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error) {
				if st.Mensagem != "Tempo de conexão esgotado" {
					t.Fatalf("unexpected message: %q", st.Mensagem)
				}
				return st, nil
			},
		)

		if _, err := uc.CheckConnection(context.Background(), "cmp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("generic failure records the default message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		statusRepo := mock_interfaces.NewMockIIntegrationStatusRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIFiscalGateway(ctrl)
		uc := NewConnectionUseCase(statusRepo, companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(company(), nil)
		gateway.EXPECT().HealthCheck(gomock.Any()).Return(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindUpstream, HTTPStatus: 502})
		statusRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error) {
				if st.Mensagem != "Falha na conexão com a prefeitura" {
					t.Fatalf("unexpected message: %q", st.Mensagem)
				}
				return st, nil
			},
		)

		if _, err := uc.CheckConnection(context.Background(), "cmp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success records conectado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		statusRepo := mock_interfaces.NewMockIIntegrationStatusRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIFiscalGateway(ctrl)
		uc := NewConnectionUseCase(statusRepo, companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "cmp-1").Return(company(), nil)
		gateway.EXPECT().HealthCheck(gomock.Any()).Return(nil)
		statusRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error) {
				if st.Status != entities.ConnectionStatusConectado || st.Mensagem != "Conexão estabelecida" {
					t.Fatalf("unexpected status record: %+v", st)
				}
				return st, nil
			},
		)

		res, err := uc.CheckConnection(context.Background(), "cmp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ConnectionStatusConectado {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}
