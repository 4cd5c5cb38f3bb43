package employee

import (
	"net/http"
	"reflect"

	"crm/backend/foundation/web"
	"crm/backend/internal/repository/postgres/employee"
	"crm/backend/internal/service"
)

type Controller struct {
	employee Employee
}

func NewController(employee Employee) *Controller {
	return &Controller{employee}
}

// employee

func (uc Controller) Create(c *web.Context) error {
	var request employee.CreateRequest

	if err := c.BindFunc(&request, "Name", "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Employee created successfully", response)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter employee.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.employee.GetList(c.Ctx, filter)
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

	return c.RespondPage("Employees retrieved successfully", list, web.NewPagination(count, page, limit))
}

func (uc Controller) GetActiveList(c *web.Context) error {
	list, err := uc.employee.GetActiveList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Active employees retrieved successfully", list)
}

func (uc Controller) GetByUserId(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "userId").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.GetByUserId(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Employee retrieved successfully", response)
}

func (uc Controller) GetById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Employee retrieved successfully", response)
}

func (uc Controller) Update(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.employee.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Employee updated successfully", response)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.employee.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Employee deleted successfully", nil)
}

func (uc Controller) Activate(c *web.Context) error {
	return uc.setActive(c, true, "Employee activated successfully")
}

func (uc Controller) Deactivate(c *web.Context) error {
	return uc.setActive(c, false, "Employee deactivated successfully")
}

func (uc Controller) setActive(c *web.Context, active bool, message string) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.SetActive(c.Ctx, id, active)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK(message, response)
}

// QrCode serves a PNG QR badge encoding the employee id.
func (uc Controller) QrCode(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	// 404 for unknown employees before producing a badge.
	if _, err := uc.employee.GetById(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	png, err := service.EmployeeBadgePNG(id)
	if err != nil {
		return c.RespondError(err)
	}

	c.Data(http.StatusOK, "image/png", png)
	return nil
}
