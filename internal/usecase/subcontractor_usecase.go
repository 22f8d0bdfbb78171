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
	ErrSubcontractorNotFound    = errors.New("subcontractor not found")
	ErrInvalidSubcontractorID   = errors.New("invalid subcontractor id")
	ErrInvalidSubcontractorName = errors.New("invalid subcontractor company name")
	ErrInvalidPaymentTerms      = errors.New("invalid payment terms")
)

// allowedPaymentTerms mirrors the admin form options.
var allowedPaymentTerms = map[string]bool{"7": true, "15": true, "30": true}

type ISubcontractorUseCase interface {
	Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	GetByID(ctx context.Context, id string) (entities.Subcontractor, error)
	List(ctx context.Context) ([]entities.Subcontractor, error)
	Update(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	Delete(ctx context.Context, id string) error
}

type SubcontractorUseCase struct {
	repo interfaces.ISubcontractorRepository
}

var _ ISubcontractorUseCase = (*SubcontractorUseCase)(nil)

func NewSubcontractorUseCase(repo interfaces.ISubcontractorRepository) *SubcontractorUseCase {
	return &SubcontractorUseCase{repo: repo}
}

func (u *SubcontractorUseCase) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	if s.CompanyName == "" {
		return entities.Subcontractor{}, ErrInvalidSubcontractorName
	}
	if s.PaymentTerms != "" && !allowedPaymentTerms[s.PaymentTerms] {
		return entities.Subcontractor{}, ErrInvalidPaymentTerms
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *SubcontractorUseCase) GetByID(ctx context.Context, id string) (entities.Subcontractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Subcontractor{}, ErrInvalidSubcontractorID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subcontractor{}, err
	}
	if s.ID == "" {
		return entities.Subcontractor{}, ErrSubcontractorNotFound
	}
	return s, nil
}

func (u *SubcontractorUseCase) List(ctx context.Context) ([]entities.Subcontractor, error) {
	return u.repo.GetAll(ctx)
}

func (u *SubcontractorUseCase) Update(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Subcontractor{}, ErrInvalidSubcontractorID
	}
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	if s.CompanyName == "" {
		return entities.Subcontractor{}, ErrInvalidSubcontractorName
	}
	if s.PaymentTerms != "" && !allowedPaymentTerms[s.PaymentTerms] {
		return entities.Subcontractor{}, ErrInvalidPaymentTerms
	}

	existing, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Subcontractor{}, err
	}
	if existing.ID == "" {
		return entities.Subcontractor{}, ErrSubcontractorNotFound
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

func (u *SubcontractorUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSubcontractorID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrSubcontractorNotFound
	}
	return u.repo.Delete(ctx, id)
}
