package attendance

import (
	"context"

	"crm/backend/internal/entity"
	"crm/backend/internal/repository/postgres/attendance"
)

type User interface {
	Validate(ctx context.Context, id int) error
}

type Attendance interface {
	Create(ctx context.Context, request attendance.CreateRequest) (entity.Attendance, error)
	CheckOut(ctx context.Context, request attendance.CheckOutRequest) (entity.Attendance, error)
	GetToday(ctx context.Context, employeeID int) (*entity.Attendance, error)
	GetById(ctx context.Context, id int) (entity.Attendance, error)
	GetList(ctx context.Context, filter attendance.Filter) ([]entity.Attendance, int, error)
	GetByDateRange(ctx context.Context, from, to string) ([]entity.Attendance, error)
	GetReportRows(ctx context.Context, from, to string) ([]attendance.ReportRow, error)
	UpdateColumns(ctx context.Context, request attendance.UpdateRequest) (entity.Attendance, error)
	Delete(ctx context.Context, id int) error
}
