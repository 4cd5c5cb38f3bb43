package attendance

import "time"

type Filter struct {
	Limit *int
	Page  *int

	// Scope the listing to one account or one employee. Nil means all.
	UserID     *int
	EmployeeID *int
}

type CreateRequest struct {
	UserID         *int    `json:"userId" form:"userId"`
	EmployeeID     *int    `json:"employeeId" form:"employeeId"`
	CheckInTime    *string `json:"checkInTime" form:"checkInTime"`
	AttendanceDate *string `json:"attendanceDate" form:"attendanceDate"`
	Notes          *string `json:"notes" form:"notes"`

	// PhotoUrl is the storage key of an already-uploaded photo. The
	// controller fills it after handing the multipart file to the photo
	// store.
	PhotoUrl *string `json:"photoUrl" form:"photoUrl"`
}

type CheckOutRequest struct {
	ID           int     `json:"-" form:"-"`
	CheckOutTime *string `json:"checkOutTime" form:"checkOutTime"`
	PhotoUrl     *string `json:"-" form:"-"`
}

type UpdateRequest struct {
	ID             int     `json:"-" form:"-"`
	CheckInTime    *string `json:"checkInTime" form:"checkInTime"`
	CheckOutTime   *string `json:"checkOutTime" form:"checkOutTime"`
	AttendanceDate *string `json:"attendanceDate" form:"attendanceDate"`
	PhotoUrl       *string `json:"photoUrl" form:"photoUrl"`
	Notes          *string `json:"notes" form:"notes"`
}

// ReportRow is one line of the date-range report exports.
type ReportRow struct {
	EmployeeName string
	Date         string
	CheckIn      time.Time
	CheckOut     *time.Time
	Status       string
	TotalHours   string
}
