package interfaces

import (
	"context"
	"time"

	"subterra_admin/internal/domain/entities"
)

// Entity repositories abstract DynamoDB persistence. GetByID returns the
// zero value (not an error) when the item does not exist; GetAll is a full
// snapshot read; the alert engine recomputes from scratch on every query.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type IContractServiceRepository interface {
	Create(ctx context.Context, s entities.ContractService) (entities.ContractService, error)
	GetByID(ctx context.Context, id string) (entities.ContractService, error)
	GetAll(ctx context.Context) ([]entities.ContractService, error)
	Update(ctx context.Context, s entities.ContractService) (entities.ContractService, error)
	Delete(ctx context.Context, id string) error
}

type ISubcontractorRepository interface {
	Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	GetByID(ctx context.Context, id string) (entities.Subcontractor, error)
	GetAll(ctx context.Context) ([]entities.Subcontractor, error)
	Update(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	Delete(ctx context.Context, id string) error
}

// IVehicleRepository additionally exposes the one source-entity mutation the
// alert engine performs: completing a maintenance item stamps the vehicle's
// last_maintenance_date (the next due date is re-set by an operator, never
// recomputed).
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	SetLastMaintenanceDate(ctx context.Context, id string, at time.Time) (entities.Vehicle, error)
}

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	GetAll(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type IFinancingRepository interface {
	Create(ctx context.Context, f entities.Financing) (entities.Financing, error)
	GetByID(ctx context.Context, id string) (entities.Financing, error)
	GetAll(ctx context.Context) ([]entities.Financing, error)
	Update(ctx context.Context, f entities.Financing) (entities.Financing, error)
	Delete(ctx context.Context, id string) error
}
