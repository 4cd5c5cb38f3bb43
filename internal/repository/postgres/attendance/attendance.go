package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/entity"
	"crm/backend/internal/pkg/repository/postgresql"
	"crm/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Create records a check-in. A new record is always created, nothing
// prevents a second open record for the same employee and day.
func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Attendance, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.Attendance{}, err
	}

	if err := r.ValidateStruct(&request, "UserID", "EmployeeID", "CheckInTime", "AttendanceDate"); err != nil {
		return entity.Attendance{}, err
	}

	checkIn, err := parseTimestamp(*request.CheckInTime, "checkInTime")
	if err != nil {
		return entity.Attendance{}, err
	}
	day, err := parseDay(*request.AttendanceDate, "attendanceDate")
	if err != nil {
		return entity.Attendance{}, err
	}

	detail := entity.Attendance{
		UserID:         *request.UserID,
		EmployeeID:     *request.EmployeeID,
		CheckInTime:    checkIn,
		PhotoUrl:       request.PhotoUrl,
		Notes:          request.Notes,
		Status:         entity.StatusPresent,
		AttendanceDate: day.String(),
	}

	if _, err := r.NewInsert().Model(&detail).Returning("id, created_at").Exec(ctx); err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	return detail, nil
}

// CheckOut closes a record. Calling it again simply overwrites the
// check-out time; an existing checkout photo is never cleared.
func (r Repository) CheckOut(ctx context.Context, request CheckOutRequest) (entity.Attendance, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.Attendance{}, err
	}

	if err := r.ValidateStruct(&request, "ID", "CheckOutTime"); err != nil {
		return entity.Attendance{}, err
	}

	detail, err := r.GetById(ctx, request.ID)
	if err != nil {
		return entity.Attendance{}, err
	}

	checkOut, err := parseTimestamp(*request.CheckOutTime, "checkOutTime")
	if err != nil {
		return entity.Attendance{}, err
	}

	now := time.Now()
	detail.CheckOutTime = &checkOut
	detail.Status = entity.DeriveStatus(detail.CheckOutTime)
	detail.UpdatedAt = &now
	if request.PhotoUrl != nil && *request.PhotoUrl != "" {
		detail.CheckOutPhoto = request.PhotoUrl
	}

	q := r.NewUpdate().
		Table("attendances").
		Set("check_out_time = ?", checkOut).
		Set("status = ?", detail.Status).
		Set("updated_at = ?", now).
		Where("id = ?", request.ID)
	if request.PhotoUrl != nil && *request.PhotoUrl != "" {
		q.Set("check_out_photo = ?", *request.PhotoUrl)
	}

	if _, err := q.Exec(ctx); err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "checking out attendance"), http.StatusBadRequest)
	}

	return detail, nil
}

// GetToday returns the newest record for the employee whose attendance
// date is the current local day. Absence is not an error, the caller
// branches on nil to decide whether the check-in form is due.
func (r Repository) GetToday(ctx context.Context, employeeID int) (*entity.Attendance, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	var detail entity.Attendance
	err := r.NewSelect().
		Model(&detail).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", today).
		Order("check_in_time DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting today attendance"), http.StatusInternalServerError)
	}

	return &detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Attendance, error) {
	var detail entity.Attendance

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Attendance{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	return detail, nil
}

// GetList returns a page of records ordered by check-in time, newest
// first. The filter optionally scopes to an account or an employee.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]entity.Attendance, int, error) {
	page, limit := 1, 10
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	page, limit = web.ClampPage(page, limit)

	var list []entity.Attendance
	q := r.NewSelect().Model(&list)
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	count, err := q.
		Order("check_in_time DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendances"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetByDateRange returns every record whose attendance date falls in the
// inclusive range, newest check-in first. Used by the report exports.
func (r Repository) GetByDateRange(ctx context.Context, from, to string) ([]entity.Attendance, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}

	start, err := parseDay(from, "from")
	if err != nil {
		return nil, err
	}
	end, err := parseDay(to, "to")
	if err != nil {
		return nil, err
	}

	var list []entity.Attendance
	err = r.NewSelect().
		Model(&list).
		Where("attendance_date >= ?", start.String()).
		Where("attendance_date <= ?", end.String()).
		Order("check_in_time DESC").
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance range"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetReportRows joins the range scan with employee names and computes
// worked hours per record.
func (r Repository) GetReportRows(ctx context.Context, from, to string) ([]ReportRow, error) {
	list, err := r.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	names := map[int]string{}
	rows := make([]ReportRow, 0, len(list))
	for _, a := range list {
		name, ok := names[a.EmployeeID]
		if !ok {
			var emp entity.Employee
			err := r.NewSelect().Model(&emp).Column("name").Where("id = ?", a.EmployeeID).Scan(ctx)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, web.NewRequestError(errors.Wrap(err, "selecting employee name"), http.StatusInternalServerError)
			}
			name = emp.Name
			names[a.EmployeeID] = name
		}

		rows = append(rows, ReportRow{
			EmployeeName: name,
			Date:         a.AttendanceDate,
			CheckIn:      a.CheckInTime,
			CheckOut:     a.CheckOutTime,
			Status:       entity.DeriveStatus(a.CheckOutTime),
			TotalHours:   TotalHours(a.CheckInTime, a.CheckOutTime),
		})
	}

	return rows, nil
}

// UpdateColumns is the admin escape hatch: an unrestricted partial field
// merge, except that status always stays derived from the check-out
// time.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (entity.Attendance, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return entity.Attendance{}, err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return entity.Attendance{}, err
	}

	if _, err := r.GetById(ctx, request.ID); err != nil {
		return entity.Attendance{}, err
	}

	q := r.NewUpdate().Table("attendances").Where("id = ?", request.ID)

	if request.CheckInTime != nil {
		checkIn, err := parseTimestamp(*request.CheckInTime, "checkInTime")
		if err != nil {
			return entity.Attendance{}, err
		}
		q.Set("check_in_time = ?", checkIn)
	}
	if request.CheckOutTime != nil {
		checkOut, err := parseTimestamp(*request.CheckOutTime, "checkOutTime")
		if err != nil {
			return entity.Attendance{}, err
		}
		q.Set("check_out_time = ?", checkOut)
		q.Set("status = ?", entity.DeriveStatus(&checkOut))
	}
	if request.AttendanceDate != nil {
		day, err := parseDay(*request.AttendanceDate, "attendanceDate")
		if err != nil {
			return entity.Attendance{}, err
		}
		q.Set("attendance_date = ?", day.String())
	}
	if request.PhotoUrl != nil {
		q.Set("photo_url = ?", *request.PhotoUrl)
	}
	if request.Notes != nil {
		q.Set("notes = ?", *request.Notes)
	}
	q.Set("updated_at = ?", time.Now())

	if _, err := q.Exec(ctx); err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	return r.GetById(ctx, request.ID)
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}

	return r.DeleteRow(ctx, "attendances", id)
}

// TotalHours formats the worked duration as HH:MM, empty while the
// record is still open.
func TotalHours(checkIn time.Time, checkOut *time.Time) string {
	if checkOut == nil {
		return ""
	}

	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = 0
	}

	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func parseTimestamp(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, web.NewRequestError(errors.Wrapf(err, "parsing %s", field), http.StatusBadRequest)
	}
	return t, nil
}

func parseDay(value, field string) (date.Date, error) {
	d, err := date.ParseDate(value)
	if err != nil {
		return date.Date{}, web.NewRequestError(errors.Wrapf(err, "parsing %s", field), http.StatusBadRequest)
	}
	return d, nil
}
