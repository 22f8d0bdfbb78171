package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFinancingNotFound      = errors.New("financing not found")
	ErrInvalidFinancingID     = errors.New("invalid financing id")
	ErrInvalidFinancingLender = errors.New("invalid financing lender")
	ErrInvalidFinancingAmount = errors.New("invalid financing amount")
)

type IFinancingUseCase interface {
	Create(ctx context.Context, f entities.Financing) (entities.Financing, error)
	GetByID(ctx context.Context, id string) (entities.Financing, error)
	List(ctx context.Context) ([]entities.Financing, error)
	Update(ctx context.Context, f entities.Financing) (entities.Financing, error)
	Delete(ctx context.Context, id string) error
}

type FinancingUseCase struct {
	repo interfaces.IFinancingRepository
}

var _ IFinancingUseCase = (*FinancingUseCase)(nil)

func NewFinancingUseCase(repo interfaces.IFinancingRepository) *FinancingUseCase {
	return &FinancingUseCase{repo: repo}
}

func (u *FinancingUseCase) validate(f entities.Financing) error {
	if strings.TrimSpace(f.Lender) == "" {
		return ErrInvalidFinancingLender
	}
	if f.Principal <= 0 || f.MonthlyPayment < 0 {
		return ErrInvalidFinancingAmount
	}
	return nil
}

func (u *FinancingUseCase) Create(ctx context.Context, f entities.Financing) (entities.Financing, error) {
	f.Lender = strings.TrimSpace(f.Lender)
	if err := u.validate(f); err != nil {
		return entities.Financing{}, err
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now
	return u.repo.Create(ctx, f)
}

func (u *FinancingUseCase) GetByID(ctx context.Context, id string) (entities.Financing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Financing{}, ErrInvalidFinancingID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Financing{}, err
	}
	if f.ID == "" {
		return entities.Financing{}, ErrFinancingNotFound
	}
	return f, nil
}

func (u *FinancingUseCase) List(ctx context.Context) ([]entities.Financing, error) {
	return u.repo.GetAll(ctx)
}

func (u *FinancingUseCase) Update(ctx context.Context, f entities.Financing) (entities.Financing, error) {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return entities.Financing{}, ErrInvalidFinancingID
	}
	f.Lender = strings.TrimSpace(f.Lender)
	if err := u.validate(f); err != nil {
		return entities.Financing{}, err
	}

	existing, err := u.repo.GetByID(ctx, f.ID)
	if err != nil {
		return entities.Financing{}, err
	}
	if existing.ID == "" {
		return entities.Financing{}, ErrFinancingNotFound
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, f)
}

func (u *FinancingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFinancingID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrFinancingNotFound
	}
	return u.repo.Delete(ctx, id)
}
