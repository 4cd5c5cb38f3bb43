package employee

import (
	"context"

	"crm/backend/internal/entity"
	"crm/backend/internal/repository/postgres/employee"
)

type Employee interface {
	Create(ctx context.Context, request employee.CreateRequest) (entity.Employee, error)
	GetList(ctx context.Context, filter employee.Filter) ([]entity.Employee, int, error)
	GetById(ctx context.Context, id int) (entity.Employee, error)
	GetByUserId(ctx context.Context, userID int) (entity.Employee, error)
	UpdateColumns(ctx context.Context, request employee.UpdateRequest) (entity.Employee, error)
	Delete(ctx context.Context, id int) error
	SetActive(ctx context.Context, id int, active bool) (entity.Employee, error)
	GetActiveList(ctx context.Context) ([]entity.Employee, error)
}
