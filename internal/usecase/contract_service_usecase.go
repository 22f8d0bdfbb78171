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
	ErrServiceNotFound       = errors.New("contract service not found")
	ErrInvalidServiceID      = errors.New("invalid contract service id")
	ErrInvalidServiceName    = errors.New("invalid contract service name")
	ErrInvalidServiceClient  = errors.New("invalid contract service client")
	ErrInvalidServiceStatus  = errors.New("invalid contract service status")
	ErrServiceClientNotFound = errors.New("contract service client not found")
)

// IContractServiceUseCase exposes contracted-work registration and
// maintenance. Status transitions are operator-driven; the engine only
// validates that the value is a known status.

type IContractServiceUseCase interface {
	Create(ctx context.Context, s entities.ContractService) (entities.ContractService, error)
	GetByID(ctx context.Context, id string) (entities.ContractService, error)
	List(ctx context.Context) ([]entities.ContractService, error)
	Update(ctx context.Context, s entities.ContractService) (entities.ContractService, error)
	Delete(ctx context.Context, id string) error
}

type ContractServiceUseCase struct {
	repo    interfaces.IContractServiceRepository
	clients interfaces.IClientRepository
}

var _ IContractServiceUseCase = (*ContractServiceUseCase)(nil)

func NewContractServiceUseCase(repo interfaces.IContractServiceRepository, clients interfaces.IClientRepository) *ContractServiceUseCase {
	return &ContractServiceUseCase{repo: repo, clients: clients}
}

func validServiceStatus(s entities.ServiceStatus) bool {
	switch s {
	case entities.ServiceStatusPending, entities.ServiceStatusInProgress,
		entities.ServiceStatusCompleted, entities.ServiceStatusCancelled:
		return true
	}
	return false
}

func (u *ContractServiceUseCase) Create(ctx context.Context, s entities.ContractService) (entities.ContractService, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.ClientID = strings.TrimSpace(s.ClientID)
	if s.Name == "" {
		return entities.ContractService{}, ErrInvalidServiceName
	}
	if s.ClientID == "" {
		return entities.ContractService{}, ErrInvalidServiceClient
	}
	if s.Status == "" {
		s.Status = entities.ServiceStatusPending
	}
	if !validServiceStatus(s.Status) {
		return entities.ContractService{}, ErrInvalidServiceStatus
	}

	client, err := u.clients.GetByID(ctx, s.ClientID)
	if err != nil {
		return entities.ContractService{}, err
	}
	if client.ID == "" {
		return entities.ContractService{}, ErrServiceClientNotFound
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *ContractServiceUseCase) GetByID(ctx context.Context, id string) (entities.ContractService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractService{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractService{}, err
	}
	if s.ID == "" {
		return entities.ContractService{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ContractServiceUseCase) List(ctx context.Context) ([]entities.ContractService, error) {
	return u.repo.GetAll(ctx)
}

func (u *ContractServiceUseCase) Update(ctx context.Context, s entities.ContractService) (entities.ContractService, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.ContractService{}, ErrInvalidServiceID
	}
	if !validServiceStatus(s.Status) {
		return entities.ContractService{}, ErrInvalidServiceStatus
	}

	existing, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.ContractService{}, err
	}
	if existing.ID == "" {
		return entities.ContractService{}, ErrServiceNotFound
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

func (u *ContractServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrServiceNotFound
	}
	return u.repo.Delete(ctx, id)
}
