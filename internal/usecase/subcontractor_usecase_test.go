package usecase

import (
	"context"
	"errors"
	"testing"

	"subterra_admin/internal/domain/entities"
	mock_interfaces "subterra_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubcontractorUseCase_Create(t *testing.T) {
	t.Run("invalid company name", func(t *testing.T) {
		uc := NewSubcontractorUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Subcontractor{CompanyName: " "})
		if !errors.Is(err, ErrInvalidSubcontractorName) {
			t.Fatalf("expected ErrInvalidSubcontractorName, got %v", err)
		}
	})

	t.Run("payment terms restricted to form options", func(t *testing.T) {
		uc := NewSubcontractorUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Subcontractor{
			CompanyName: "Dig Deep LLC", PaymentTerms: "45",
		})
		if !errors.Is(err, ErrInvalidPaymentTerms) {
			t.Fatalf("expected ErrInvalidPaymentTerms, got %v", err)
		}
	})

	t.Run("blank terms allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubcontractorRepository(ctrl)
		uc := NewSubcontractorUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Subcontractor{})).DoAndReturn(
			func(_ context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
				if s.ID == "" || s.CompanyName != "Dig Deep LLC" {
					t.Fatalf("unexpected subcontractor: %+v", s)
				}
				return s, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Subcontractor{CompanyName: " Dig Deep LLC "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// blank terms fall back at derivation time, not at registration
		if res.PaymentTerms != "" {
			t.Fatalf("expected terms left blank, got %q", res.PaymentTerms)
		}
	})
}

func TestSubcontractorUseCase_Update(t *testing.T) {
	t.Run("invalid terms rejected", func(t *testing.T) {
		uc := NewSubcontractorUseCase(nil)
		_, err := uc.Update(context.Background(), entities.Subcontractor{
			ID: "sub1", CompanyName: "Dig Deep LLC", PaymentTerms: "60",
		})
		if !errors.Is(err, ErrInvalidPaymentTerms) {
			t.Fatalf("expected ErrInvalidPaymentTerms, got %v", err)
		}
	})

	t.Run("unknown subcontractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubcontractorRepository(ctrl)
		uc := NewSubcontractorUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Subcontractor{}, nil)

		_, err := uc.Update(context.Background(), entities.Subcontractor{
			ID: "ghost", CompanyName: "Dig Deep LLC", PaymentTerms: "30",
		})
		if !errors.Is(err, ErrSubcontractorNotFound) {
			t.Fatalf("expected ErrSubcontractorNotFound, got %v", err)
		}
	})
}
