package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance statuses. The stored value is always derived from the
// presence of a check-out time, never patched directly.
const (
	StatusPresent    = "present"
	StatusCheckedOut = "checked_out"
)

// Attendance is a single check-in/check-out event. AttendanceDate is the
// calendar day the event belongs to, distinct from the check-in
// timestamp.
type Attendance struct {
	bun.BaseModel `bun:"table:attendances,alias:attendance"`

	BasicEntity
	UserID         int        `json:"userId" bun:"user_id"`
	EmployeeID     int        `json:"employeeId" bun:"employee_id"`
	CheckInTime    time.Time  `json:"checkInTime" bun:"check_in_time"`
	CheckOutTime   *time.Time `json:"checkOutTime" bun:"check_out_time"`
	PhotoUrl       *string    `json:"photoUrl" bun:"photo_url"`
	CheckOutPhoto  *string    `json:"checkOutPhoto" bun:"check_out_photo"`
	Notes          *string    `json:"notes" bun:"notes"`
	Status         string     `json:"status" bun:"status"`
	AttendanceDate string     `json:"attendanceDate" bun:"attendance_date"`
}

// DeriveStatus computes the lifecycle state from the check-out time.
func DeriveStatus(checkOutTime *time.Time) string {
	if checkOutTime == nil {
		return StatusPresent
	}
	return StatusCheckedOut
}
