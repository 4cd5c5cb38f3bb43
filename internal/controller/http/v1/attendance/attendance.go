package attendance

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"crm/backend/foundation/web"
	"crm/backend/internal/entity"
	"crm/backend/internal/pkg/cache"
	"crm/backend/internal/repository/postgres/attendance"
	"crm/backend/internal/service"
)

var errRangeRequired = errors.New("from and to query parameters are required")

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

type Controller struct {
	attendance Attendance
	user       User
	store      service.PhotoStore
	today      *cache.TodayCache
}

func NewController(attendance Attendance, user User, store service.PhotoStore, today *cache.TodayCache) *Controller {
	return &Controller{attendance, user, store, today}
}

// attendance

func (uc Controller) Create(c *web.Context) error {
	var request attendance.CreateRequest

	if err := c.BindFunc(&request, "UserID", "EmployeeID"); err != nil {
		return c.RespondError(err)
	}

	// A deactivated account cannot record attendance.
	if err := uc.user.Validate(c.Ctx, *request.UserID); err != nil {
		return c.RespondError(err)
	}

	if file, err := c.FormFile("photo"); err == nil {
		key, err := uc.store.Upload(c.Ctx, file, "attendance")
		if err != nil {
			return c.RespondError(err)
		}
		request.PhotoUrl = &key
	}

	response, err := uc.attendance.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	uc.today.Invalidate(c.Ctx, response.EmployeeID)

	return c.RespondOK("Check-in recorded successfully", response)
}

func (uc Controller) CheckOut(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.CheckOutRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if file, err := c.FormFile("photo"); err == nil {
		key, err := uc.store.Upload(c.Ctx, file, "checkout")
		if err != nil {
			return c.RespondError(err)
		}
		request.PhotoUrl = &key
	}

	response, err := uc.attendance.CheckOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	uc.today.Invalidate(c.Ctx, response.EmployeeID)

	return c.RespondOK("Check-out recorded successfully", response)
}

func (uc Controller) GetToday(c *web.Context) error {
	employeeID := c.GetParam(reflect.Int, "employeeId").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if payload, ok := uc.today.Get(c.Ctx, employeeID); ok {
		var cached *entity.Attendance
		if err := json.Unmarshal(payload, &cached); err == nil {
			return c.RespondOK("Today's attendance retrieved successfully", cached)
		}
	}

	response, err := uc.attendance.GetToday(c.Ctx, employeeID)
	if err != nil {
		return c.RespondError(err)
	}

	if payload, err := json.Marshal(response); err == nil {
		uc.today.Set(c.Ctx, employeeID, payload)
	}

	return c.RespondOK("Today's attendance retrieved successfully", response)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	return uc.respondList(c, filter)
}

func (uc Controller) GetListByUser(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "userId").(int)

	var filter attendance.Filter
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	filter.UserID = &userID

	return uc.respondList(c, filter)
}

func (uc Controller) GetListByEmployee(c *web.Context) error {
	employeeID := c.GetParam(reflect.Int, "employeeId").(int)

	var filter attendance.Filter
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	filter.EmployeeID = &employeeID

	return uc.respondList(c, filter)
}

func (uc Controller) respondList(c *web.Context, filter attendance.Filter) error {
	list, count, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	page, limit := 1, 10
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	return c.RespondPage("Attendances retrieved successfully", list, web.NewPagination(count, page, limit))
}

func (uc Controller) GetById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Attendance retrieved successfully", response)
}

func (uc Controller) Update(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.attendance.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	uc.today.Invalidate(c.Ctx, response.EmployeeID)

	return c.RespondOK("Attendance updated successfully", response)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	if err := uc.attendance.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	uc.today.Invalidate(c.Ctx, response.EmployeeID)

	return c.RespondOK("Attendance deleted successfully", nil)
}

func (uc Controller) ExportExcel(c *web.Context) error {
	from, to, err := uc.exportRange(c)
	if err != nil {
		return c.RespondError(err)
	}

	rows, err := uc.attendance.GetReportRows(c.Ctx, from, to)
	if err != nil {
		return c.RespondError(err)
	}

	data, err := service.AttendanceReportExcel(rows)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="attendance-report.xlsx"`)
	c.Data(http.StatusOK, excelContentType, data)
	return nil
}

func (uc Controller) ExportPDF(c *web.Context) error {
	from, to, err := uc.exportRange(c)
	if err != nil {
		return c.RespondError(err)
	}

	rows, err := uc.attendance.GetReportRows(c.Ctx, from, to)
	if err != nil {
		return c.RespondError(err)
	}

	data, err := service.AttendanceReportPDF(rows)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="attendance-report.pdf"`)
	c.Data(http.StatusOK, pdfContentType, data)
	return nil
}

func (uc Controller) exportRange(c *web.Context) (string, string, error) {
	var from, to string

	if v, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok && v != nil {
		from = *v
	}
	if v, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok && v != nil {
		to = *v
	}
	if err := c.ValidQuery(); err != nil {
		return "", "", err
	}
	if from == "" || to == "" {
		return "", "", web.NewRequestError(errRangeRequired, http.StatusBadRequest)
	}

	return from, to, nil
}
