package entity

import "time"

// BasicEntity carries the columns shared by every table.
type BasicEntity struct {
	ID        int        `json:"id" bun:"id,pk,autoincrement"`
	CreatedAt time.Time  `json:"createdAt" bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt *time.Time `json:"updatedAt" bun:"updated_at"`
}
