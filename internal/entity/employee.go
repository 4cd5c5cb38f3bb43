package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Employee is a profile record, optionally linked to the account that
// owns it.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:employee"`

	BasicEntity
	UserID     *int       `json:"userId" bun:"user_id"`
	Name       string     `json:"name" bun:"name"`
	Email      string     `json:"email" bun:"email"`
	Phone      *string    `json:"phone" bun:"phone"`
	Position   *string    `json:"position" bun:"position"`
	Department *string    `json:"department" bun:"department"`
	JoinDate   *time.Time `json:"joinDate" bun:"join_date"`
	Address    *string    `json:"address" bun:"address"`
	Status     *string    `json:"status" bun:"status"`
	IsActive   bool       `json:"isActive" bun:"is_active"`

	Attendances []Attendance `json:"attendances,omitempty" bun:"rel:has-many,join:id=employee_id"`
}
