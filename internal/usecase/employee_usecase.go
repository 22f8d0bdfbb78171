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
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidEmployeeID   = errors.New("invalid employee id")
	ErrInvalidEmployeeName = errors.New("invalid employee name")
)

type IEmployeeUseCase interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return entities.Employee{}, ErrInvalidEmployeeName
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.GetAll(ctx)
}

func (u *EmployeeUseCase) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return entities.Employee{}, ErrInvalidEmployeeName
	}

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Employee{}, err
	}
	if existing.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEmployeeID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrEmployeeNotFound
	}
	return u.repo.Delete(ctx, id)
}
